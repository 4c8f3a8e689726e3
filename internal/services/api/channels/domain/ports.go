package domain

import "context"

// ServicePort defines the service contract for channels
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Channel, error)
	ByName(ctx context.Context, name string) (Channel, error)
	Activity(ctx context.Context, name string, in ActivityInput) ([]ActivityPoint, error)
	Stats(ctx context.Context, name string, in StatsInput) (Stats, error)
	Compare(ctx context.Context, name string, in CompareInput) (Comparison, error)
}
