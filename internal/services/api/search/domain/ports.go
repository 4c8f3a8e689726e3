package domain

import "context"

// ServicePort defines the service contract for message search
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResult, error)
	Popular(ctx context.Context, in PopularInput) (PopularResult, error)
	ByID(ctx context.Context, id int64, in DetailInput) (Detail, error)
}
