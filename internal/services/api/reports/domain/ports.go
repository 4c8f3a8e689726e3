package domain

import "context"

// ServicePort defines the service contract for reports
type ServicePort interface {
	TopProducts(ctx context.Context, in TopProductsInput) (TopProductsReport, error)
	VisualContent(ctx context.Context) (VisualContentStats, error)
	Engagement(ctx context.Context, in EngagementInput) (EngagementMetrics, error)
	DailyTrends(ctx context.Context, in TrendsInput) (DailyTrends, error)
}
