package clubstats

import "context"

type Repository interface {
	GetByKey(ctx context.Context, key string) (Overview, bool, error)
	Insert(ctx context.Context, item Overview) (bool, error)
}
