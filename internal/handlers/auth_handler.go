package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/educonnect-booking/internal/dto"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/httpresp"
	"github.com/BruksfildServices01/educonnect-booking/internal/middleware"
	"github.com/BruksfildServices01/educonnect-booking/internal/usecase/account"
)

type AuthHandler struct {
	register *account.Register
	login    *account.Login
	logout   *account.Logout
	log      *zap.Logger
}

func NewAuthHandler(
	register *account.Register,
	login *account.Login,
	logout *account.Logout,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, logout: logout, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.AuthDTO{User: dto.NewUserDTO(res.User), Token: res.Token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.AuthDTO{User: dto.NewUserDTO(res.User), Token: res.Token})
}

// Logout ends the session behind the bearer token. The token itself stays
// valid until expiry but is refused once its session is gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_expired", "Session has ended, please log in again.")
		return
	}

	if err := h.logout.Execute(c.Request.Context(), *sess); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
