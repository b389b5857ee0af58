package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photoblog-backend/internal/core/mapping"
	"photoblog-backend/pkg/logger"
)

// MappingError writes the HTTP translation of a field-mapping failure and
// reports whether err was one. Payload and validation problems are client
// errors; a ConfigError is a programming bug and answers 500.
func MappingError(c *gin.Context, err error) bool {
	var (
		invalidPayload *mapping.InvalidPayloadError
		missingField   *mapping.MissingFieldError
		validationErr  *mapping.ValidationError
		configErr      *mapping.ConfigError
	)

	switch {
	case errors.As(err, &invalidPayload):
		ErrorResponse(c, http.StatusBadRequest, "INVALID_PAYLOAD", invalidPayload.Error())
	case errors.As(err, &missingField):
		ErrorResponse(c, http.StatusBadRequest, "MISSING_FIELD", missingField.Error())
	case errors.As(err, &validationErr):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_FAILED", validationErr.Error())
	case errors.As(err, &configErr):
		logger.Error("field map misconfigured", configErr)
		InternalServerError(c, "internal error")
	default:
		return false
	}
	return true
}
