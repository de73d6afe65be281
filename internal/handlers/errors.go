package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/usecase/account"
	"github.com/BruksfildServices01/educonnect-booking/internal/validators"
)

type businessResponse struct {
	write   func(c *gin.Context, code, message string)
	message string
}

var businessErrors = map[string]businessResponse{
	domain.ErrCodeCounselorNotFound:       {httperr.NotFound, "Counselor not found."},
	domain.ErrCodeReservationNotFound:     {httperr.NotFound, "Reservation not found."},
	domain.ErrCodeInvalidConsultationType: {httperr.BadRequest, "Unknown consultation type."},
	domain.ErrCodeInvalidDate:             {httperr.BadRequest, "Date must be formatted yyyy-MM-dd."},
	domain.ErrCodeInvalidTime:             {httperr.BadRequest, "Time must be a slot on the chosen date."},
	domain.ErrCodeInvalidMonth:            {httperr.BadRequest, "Month must be formatted yyyy-MM."},
	domain.ErrCodeIncompleteSelection:     {httperr.BadRequest, "Choose a consultation type, date and time."},
	domain.ErrCodeDateUnavailable:         {httperr.UnprocessableEntity, "The counselor is not available on this date."},
	domain.ErrCodeSlotUnavailable:         {httperr.UnprocessableEntity, "This time slot is not available."},
	domain.ErrCodeSlotTaken:               {httperr.Conflict, "Someone else just booked this slot."},
	domain.ErrCodePaymentIncomplete:       {httperr.Conflict, "The payment has not gone through yet."},
	domain.ErrCodePaymentFailed:           {httperr.BadGateway, "Payment could not be reached, try again."},

	account.ErrCodeInvalidCredentials: {httperr.Unauthorized, "Invalid email or password."},
	account.ErrCodeEmailTaken:         {httperr.Conflict, "This email is already registered."},
	account.ErrCodeInvalidEmailDomain: {httperr.BadRequest, "The email domain does not look valid."},
}

// writeError answers with the status mapped to a business error, or logs
// and answers 500 for anything else.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if br, known := businessErrors[code]; known {
			br.write(c, code, br.message)
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Something went wrong.")
}

type invalidRequest struct {
	Code    string                  `json:"error_code"`
	Message string                  `json:"message"`
	Fields  []validators.FieldError `json:"fields"`
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, invalidRequest{
		Code:    "invalid_request",
		Message: "Invalid request body.",
		Fields:  validators.Describe(err),
	})
}
