package domain

import "context"

// ServicePort defines the service contract for analytics
type ServicePort interface {
	Overview(ctx context.Context, in OverviewInput) (Overview, error)
}
