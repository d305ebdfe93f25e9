package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

var errEmptyBody = errors.New("request body cannot be empty")

// ParseAndValidate decodes the JSON body into dest and validates it. On failure
// it writes the error response itself and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := decodeBody(r, dest); err != nil {
		logger.Warn("Rejected request body", "error", err)
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()).WithError(err))
		return false
	}

	err := validate.Struct(dest)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn("Request validation failed", "fields", len(validationErrs), "error", validationErrs.Error())
		response.ValidationError(w, validationErrs)
		return false
	}

	logger.Error("Validator misuse", "error", err)
	response.Error(w, appErrors.InternalError("Failed to validate request").WithError(err))
	return false

}

func decodeBody(r *http.Request, dest any) error {

	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if len(body) == 0 {
		return errEmptyBody
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// PathID parses the {id} path value as a product ID.
func PathID(r *http.Request) (int64, error) {

	raw := r.PathValue("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError("Invalid product id").WithDetail(raw)
	}

	return id, nil
}
