package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/SscSPs/pharma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CompanyIDHeader is the last place the tenant id is looked up.
const CompanyIDHeader = "X-Company-ID"

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:   http.StatusBadRequest,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindForbidden:    http.StatusForbidden,
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindConflict:     http.StatusConflict,
	apperrors.KindInternal:     http.StatusInternalServerError,
}

// statusForError maps an error's kind to its HTTP status.
func statusForError(err error) int {
	if status, ok := statusByKind[apperrors.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError writes the failure envelope for err. Internal errors are logged
// and answered with fallbackMsg so driver details never reach the client.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.Failure(fallbackMsg))
		return
	}
	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.Failure(apperrors.MessageOf(err), apperrors.DetailsOf(err)...))
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Failure("Invalid request format", bindingDetails(err)...))
}

func bindingDetails(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	details := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		details[i] = describeFieldError(fe)
	}
	return details
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " must not be blank"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// resolveCompanyID returns the first non-empty company id from the body, the
// companyId query parameter or the X-Company-ID header, in that order.
func resolveCompanyID(c *gin.Context, body dto.TenantScoped) (string, bool) {
	candidates := []string{c.Query("companyId"), c.GetHeader(CompanyIDHeader)}
	if body != nil {
		candidates = append([]string{body.GetCompanyID()}, candidates...)
	}
	for _, candidate := range candidates {
		if id := strings.TrimSpace(candidate); id != "" {
			return id, true
		}
	}
	return "", false
}

// requireCompanyID resolves the tenant or answers 400.
func requireCompanyID(c *gin.Context, body dto.TenantScoped) (string, bool) {
	companyID, ok := resolveCompanyID(c, body)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Failure("companyId is required"))
	}
	return companyID, ok
}

// requireUserID reads the caller set by the auth middleware or answers 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Failure("Unauthorized"))
	}
	return userID, ok
}
