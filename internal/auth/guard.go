package auth

import (
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/model"
)

// CanMutate reports whether identity may edit or delete the post. Pure
// ownership check, no I/O.
func CanMutate(post *model.Post, identity Identity) bool {
	return post != nil && post.AuthorID == string(identity)
}

// RequireAuthenticated fails with ErrUnauthenticated when no identity is
// present.
func RequireAuthenticated(identity Identity) error {
	if identity.IsZero() {
		return custom_errors.ErrUnauthenticated
	}
	return nil
}
