package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/usecase/account"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"counselor not found", httperr.ErrBusiness(domain.ErrCodeCounselorNotFound), http.StatusNotFound, domain.ErrCodeCounselorNotFound},
		{"incomplete selection", httperr.ErrBusiness(domain.ErrCodeIncompleteSelection), http.StatusBadRequest, domain.ErrCodeIncompleteSelection},
		{"date unavailable", httperr.ErrBusiness(domain.ErrCodeDateUnavailable), http.StatusUnprocessableEntity, domain.ErrCodeDateUnavailable},
		{"slot taken", httperr.ErrBusiness(domain.ErrCodeSlotTaken), http.StatusConflict, domain.ErrCodeSlotTaken},
		{"payment failed", httperr.ErrBusiness(domain.ErrCodePaymentFailed), http.StatusBadGateway, domain.ErrCodePaymentFailed},
		{"payment incomplete", httperr.ErrBusiness(domain.ErrCodePaymentIncomplete), http.StatusConflict, domain.ErrCodePaymentIncomplete},
		{"reservation not found", httperr.ErrBusiness(domain.ErrCodeReservationNotFound), http.StatusNotFound, domain.ErrCodeReservationNotFound},
		{"email taken", httperr.ErrBusiness(account.ErrCodeEmailTaken), http.StatusConflict, account.ErrCodeEmailTaken},
		{"bad credentials", httperr.ErrBusiness(account.ErrCodeInvalidCredentials), http.StatusUnauthorized, account.ErrCodeInvalidCredentials},
		{"wrapped business error", fmt.Errorf("checkout: %w", httperr.ErrBusiness(domain.ErrCodeSlotTaken)), http.StatusConflict, domain.ErrCodeSlotTaken},
		{"unmapped business code", httperr.ErrBusiness("something_new"), http.StatusBadRequest, "something_new"},
		{"infrastructure error", errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.status, w.Code)

			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
