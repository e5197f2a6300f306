package custom_errors

import "errors"

// Sentinel errors shared across layers. Services map repository and storage
// failures into this set; the HTTP layer maps the set onto status codes.
var (
	// Authentication and authorization.
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("operation forbidden")
	ErrNicknameRequired = errors.New("nickname setup required")

	// Validation.
	ErrValidation      = errors.New("validation failed")
	ErrNicknameEmpty   = errors.New("nickname must not be empty")
	ErrInvalidCategory = errors.New("invalid category")

	// Lookup.
	ErrPostNotFound    = errors.New("post not found")
	ErrProfileNotFound = errors.New("profile not found")

	// Backing store.
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")

	// Object storage. ErrImageCleanup is a warning: the post record is
	// already gone, only the stored image could not be removed.
	ErrImageUpload  = errors.New("image upload failed")
	ErrImageDelete  = errors.New("image delete failed")
	ErrImageCleanup = errors.New("image cleanup failed after post delete")

	// Cache.
	ErrCacheMiss = errors.New("cache miss")
)
