package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Document errors
	ErrFileNotFound      = fmt.Errorf("document not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

	// Persistence errors
	ErrWorkNotFound        = fmt.Errorf("work not found")
	ErrRightHolderNotFound = fmt.Errorf("right holder not found")
	ErrDatabaseUnavailable = fmt.Errorf("database unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
