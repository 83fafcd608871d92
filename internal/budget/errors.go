package budget

import "errors"

// Domain errors
var (
	// ErrUserExists indicates a registration attempt for a taken username
	ErrUserExists = errors.New("username already exists")

	// ErrInvalidCredentials indicates an unknown username or a wrong
	// password. The two cases are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyPreviousMonth indicates copy-forward found nothing to copy
	ErrEmptyPreviousMonth = errors.New("previous month has no data")

	// ErrCategoryExists indicates an add or rename collides with an
	// existing category
	ErrCategoryExists = errors.New("category already exists")

	// ErrCategoryNotFound indicates the named category is not in settings
	ErrCategoryNotFound = errors.New("category not found")

	// ErrImportTooLarge indicates the import file exceeds the size limit
	ErrImportTooLarge = errors.New("import file exceeds size limit")
)
