package validators

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
)

const (
	TagConsultationType = "consultation_type"
	TagISODate          = "iso_date"
	TagISOSlot          = "iso_slot"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register adds the booking tags to v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagConsultationType: validateConsultationType,
		TagISODate:          layoutValidator(domain.DateLayout),
		TagISOSlot:          layoutValidator(domain.SlotLayout),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterGin adds the booking tags to gin's binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

func validateConsultationType(fl validator.FieldLevel) bool {
	return domain.ConsultationTypeID(fl.Field().String()).Valid()
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

// Describe flattens binding errors into per-field messages. Errors that are
// not validation errors (malformed JSON) come back as a single entry.
func Describe(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case TagConsultationType:
		return "must be one of video, chat, package"
	case TagISODate:
		return "must be a date formatted yyyy-MM-dd"
	case TagISOSlot:
		return "must be a time formatted yyyy-MM-ddTHH:mm"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
