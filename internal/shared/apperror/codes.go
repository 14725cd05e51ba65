package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput         = "INVALID_INPUT"
	CodeValidation           = "VALIDATION_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeConflict             = "CONFLICT"
	CodeInvalidState         = "INVALID_STATE"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests      = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeUpstream           = "UPSTREAM_ERROR"
	CodeDeliveryFailed     = "DELIVERY_FAILED"
	CodePartialFailure     = "PARTIAL_FAILURE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
