package internal

import "net/http"

const (
	// ErrCodeUnknown is the error code for unknown errors
	ErrCodeUnknown = "UNKNOWN_ERROR"
	// ErrCodeIllegalPath is the error that is returned when the client did not send a valid path parameter
	ErrCodeIllegalPath = "ILLEGAL_PATH"
	// ErrCodeRepoError is returned when the request to a repo fails with an error
	ErrCodeRepoError = "STORAGE_QUERY_FAILED"
	// ErrCodeRequiredFieldMissing is returned when at least one required field has not been populated on an incoming
	// request
	ErrCodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	// ErrCodeIllegalJSON is returned when the request did not contain a valid JSON body
	ErrCodeIllegalJSON = "ILLEGAL_JSON_REQUEST"
	// ErrCodeIllegalValue is returned when any field in the transferred data does not validate for some reason
	ErrCodeIllegalValue = "ILLEGAL_VALUE"
	// ErrCodeInvalidID is returned when an ID is required inside a request, but is not provided or in a wrong format
	ErrCodeInvalidID = "INVALID_ID"
	// ErrCodeInvalidDate is returned when a calendar date in a request cannot be parsed
	ErrCodeInvalidDate = "INVALID_DATE"
	// ErrCodeTournamentNotFound is returned when an operation works on a tournament that does not exist
	ErrCodeTournamentNotFound = "TOURNAMENT_NOT_FOUND"
	// ErrCodeMenuItemNotFound is returned when an operation works on a menu item that does not exist
	ErrCodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	// ErrCodeBannerNotFound is returned when an operation works on a banner that does not exist
	ErrCodeBannerNotFound = "BANNER_NOT_FOUND"
	// ErrCodeChampionNotFound is returned when an operation works on a hall of fame entry that does not exist
	ErrCodeChampionNotFound = "CHAMPION_NOT_FOUND"
	// ErrCodeImageNotFound is returned when a site image of the requested type has not been stored yet
	ErrCodeImageNotFound = "IMAGE_NOT_FOUND"
	// ErrCodeUnknownSurface is returned when a featured tournament is requested for a surface nobody knows about
	ErrCodeUnknownSurface = "UNKNOWN_SURFACE"
	// ErrCodeIllegalFeaturedMode is returned when the display settings name a featured mode that does not exist
	ErrCodeIllegalFeaturedMode = "ILLEGAL_FEATURED_MODE"
	// ErrCodeUploadFailed is returned when an uploaded file could not be stored
	ErrCodeUploadFailed = "UPLOAD_FAILED"
	// ErrCodeDateHintNotRecognized is returned when no date could be found inside a date hint text
	ErrCodeDateHintNotRecognized = "DATE_HINT_NOT_RECOGNIZED"
	// ErrCodeExportFailed is returned when a calendar or spreadsheet export could not be generated
	ErrCodeExportFailed = "EXPORT_FAILED"
	// ErrCodeConfigWriteFailed is returned when changed settings could not be persisted
	ErrCodeConfigWriteFailed = "CONFIG_WRITE_FAILED"
	// ErrCodeLoginFailed is returned when the user fails to login for some reason
	ErrCodeLoginFailed = "LOGIN_FAILED"
	// ErrCodeNotLoggedIn is returned when the user tried to access an API that needs a logged-in user, but the user
	// has no authenticated session
	ErrCodeNotLoggedIn = "NOT_LOGGED_IN"
	// ErrCodeForbidden is returned when the logged-in user lacks the permission for an operation
	ErrCodeForbidden = "FORBIDDEN"
)

var (
	// ErrTournamentNotFound is returned when the requested tournament does not exist
	ErrTournamentNotFound = MakeError(
		http.StatusNotFound,
		ErrCodeTournamentNotFound,
		"Tournament not found",
	)
	// ErrNotLoggedIn is returned by all admin functions when nobody is logged in
	ErrNotLoggedIn = MakeError(
		http.StatusForbidden,
		ErrCodeNotLoggedIn,
		"This function needs a logged-in user",
	)
)

// HTTPError is an error that contains information about the error message to return to the client
type HTTPError struct {
	message string
	code    string
	status  int
	data    interface{}
}

// MakeError creates a new HTTPError with the given contents
func MakeError(status int, code, message string) *HTTPError {
	return MakeErrorWithData(status, code, message, nil)
}

// MakeErrorWithData creates a new HTTPError with the given contents and an additional data element
func MakeErrorWithData(status int, code, message string, data interface{}) *HTTPError {
	return &HTTPError{message, code, status, data}
}

// Error implements the errorer interface
func (e *HTTPError) Error() string {
	return e.message
}

// Status returns the HTTP status that should be returned
func (e *HTTPError) Status() int {
	return e.status
}

// ErrorCode returns the machine-readable error code
func (e *HTTPError) ErrorCode() string {
	return e.code
}

// Data returns additional data about the error
func (e *HTTPError) Data() interface{} {
	return e.data
}
