// Package clubalias records which stored club a request name resolves to when
// it differs from the upstream name, e.g. "milan" for "AC Milan".
package clubalias

import "context"

// Repository maps alias keys to the name key of a stored club. Both sides are
// naturalkey.Key values.
type Repository interface {
	// Resolve returns the name key alias points at.
	Resolve(ctx context.Context, alias string) (nameKey string, found bool, err error)
	// Save points alias at nameKey, replacing any earlier target.
	Save(ctx context.Context, alias, nameKey string) error
	// Repoint moves every alias of fromKey to toKey and reports how many moved.
	Repoint(ctx context.Context, fromKey, toKey string) (int, error)
}
