package dto

import "github.com/SscSPs/pharma_backend/internal/core/domain"

// Envelope status values.
const (
	StatusFailure = 0
	StatusSuccess = 1
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status     int              `json:"status"`
	Message    string           `json:"message"`
	Data       any              `json:"data"`
	Pagination *domain.PageInfo `json:"pagination,omitempty"`
	Errors     []string         `json:"errors,omitempty"`
}

// Success wraps data in a success envelope.
func Success(message string, data any) APIResponse {
	return APIResponse{Status: StatusSuccess, Message: message, Data: data}
}

// Paginated wraps one page of data with its pagination block.
func Paginated(message string, data any, page domain.PageInfo) APIResponse {
	return APIResponse{Status: StatusSuccess, Message: message, Data: data, Pagination: &page}
}

// Failure builds an error envelope. details carries individual validation messages.
func Failure(message string, details ...string) APIResponse {
	return APIResponse{Status: StatusFailure, Message: message, Errors: details}
}

// TenantScoped is implemented by request bodies that may carry the company id.
type TenantScoped interface {
	GetCompanyID() string
}
