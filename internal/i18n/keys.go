// Package i18n provides internationalization support for the carton service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuantity indicates an invalid quantity value.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationDimensions indicates invalid unit dimensions.
	ErrKeyValidationDimensions = "error.validation.dimensions"
	// ErrKeyValidationFieldMapping indicates an invalid field mapping.
	ErrKeyValidationFieldMapping = "error.validation.field_mapping"
	// ErrKeyNoArrangement indicates that no arrangement could be found.
	ErrKeyNoArrangement = "error.no_arrangement"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyArrangementSolved indicates a successful arrangement calculation.
	SuccessKeyArrangementSolved = "success.arrangement_solved"
	// SuccessKeyRunCompleted indicates a completed packing run.
	SuccessKeyRunCompleted = "success.run_completed"
)
