package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session errors
	ErrMissingSession = fmt.Errorf("no session cookie configured")
	ErrNotSignedIn    = fmt.Errorf("not signed in to a profile")
	ErrTimeout        = fmt.Errorf("operation timed out")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrMovieNotFound      = fmt.Errorf("movie not found")
	ErrNoRating           = fmt.Errorf("no rating stored")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
	ErrQueryTooShort   = fmt.Errorf("query must be at least 2 characters")
	ErrNoSelection     = fmt.Errorf("no movie selected")
	ErrTooManyChoices  = fmt.Errorf("you can select a maximum of 5 categories")
	ErrRatingRequired  = fmt.Errorf("please select a rating (1-10 stars)")
)
