package catalog

import "errors"

// Domain errors for the catalog package.
var (
	// ErrBreakingChange is returned by Sync in strict mode when the compiled
	// registry removes or changes a member of the stored snapshot.
	ErrBreakingChange = errors.New("catalog: breaking change to unit catalog")
)
