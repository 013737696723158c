package clubinfo

import "context"

// Repository describes club info persistence. Keys are naturalkey.Key values.
type Repository interface {
	GetByKey(ctx context.Context, key string) (ClubInfo, bool, error)
	// Insert stores item unless a club with the same key exists. It reports
	// whether a row was written.
	Insert(ctx context.Context, item ClubInfo) (bool, error)
	// Upsert stores item, replacing the club with the same key.
	Upsert(ctx context.Context, item ClubInfo) error
	// Update overwrites the club currently stored under key. It returns false
	// when nothing is stored under key.
	Update(ctx context.Context, key string, item ClubInfo) (bool, error)
}
