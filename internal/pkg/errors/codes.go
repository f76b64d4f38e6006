package errors

import "net/http"

// Причины ошибок валидации (details.reason)
const (
	ReasonMissingTitle          = "missingTitle"
	ReasonMissingCity           = "missingCity"
	ReasonInsufficientWaypoints = "insufficientWaypoints"
	ReasonEndpointMismatch      = "endpointMismatch"
	ReasonInvalidCoordinates    = "invalidCoordinates"
	ReasonInvalidDistance       = "invalidDistance"
	ReasonInvalidDifficulty     = "invalidDifficulty"
	ReasonInvalidStatus         = "invalidStatus"
	ReasonInvalidWaypoints      = "invalidWaypoints"
)

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Route validation failed",
		http.StatusBadRequest,
	)

	ErrNotAuthenticated = New(
		"NOT_AUTHENTICATED",
		"Sign in to save routes",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Only the owner or an admin may change this route",
		http.StatusForbidden,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrGeocodeNotFound = New(
		"GEOCODE_NOT_FOUND",
		"Address not found",
		http.StatusNotFound,
	)

	ErrDraftNotFound = New(
		"DRAFT_NOT_FOUND",
		"Route draft not found or expired",
		http.StatusNotFound,
	)

	ErrGeocodingUnavailable = New(
		"GEOCODING_UNAVAILABLE",
		"Geocoding service unavailable",
		http.StatusServiceUnavailable,
	)

	ErrRoutingUnavailable = New(
		"ROUTING_UNAVAILABLE",
		"Routing service unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// NewValidationError - ошибка валидации с указанной причиной
func NewValidationError(reason string) *AppError {
	return ErrValidation.WithReason(reason)
}
