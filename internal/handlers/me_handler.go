package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/dto"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/httpresp"
	"github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/middleware"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
)

type userFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type MeHandler struct {
	users userFinder
	log   *zap.Logger
}

func NewMeHandler(users userFinder, log *zap.Logger) *MeHandler {
	return &MeHandler{users: users, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Not logged in.")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			httperr.NotFound(c, "user_not_found", "Account no longer exists.")
			return
		}
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}
