package service

import (
	"fmt"

	"project-api/src/internal/constants"
	"project-api/src/internal/database"
)

// wrapTransient converts storage contention errors into the retryable
// sentinel so the HTTP layer maps them to 503. All other errors pass
// through untouched.
func wrapTransient(err error) error {
	if err == nil {
		return nil
	}
	if database.IsTransientError(err) {
		return fmt.Errorf("%w: %v", constants.ErrTransient, err)
	}
	return err
}
