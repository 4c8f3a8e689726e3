package module

import (
	"context"

	reportsdom "medlens/internal/services/api/reports/domain"
	reportssvc "medlens/internal/services/api/reports/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptReportsPort adapts the reports service to the domain port interface
type adaptReportsPort struct{ svc reportssvc.Service }

// TopProducts implements the domain ServicePort interface
func (a adaptReportsPort) TopProducts(ctx context.Context, in reportsdom.TopProductsInput) (reportsdom.TopProductsReport, error) {
	return a.svc.TopProducts(ctx, in)
}

// VisualContent implements the domain ServicePort interface
func (a adaptReportsPort) VisualContent(ctx context.Context) (reportsdom.VisualContentStats, error) {
	return a.svc.VisualContent(ctx)
}

// Engagement implements the domain ServicePort interface
func (a adaptReportsPort) Engagement(ctx context.Context, in reportsdom.EngagementInput) (reportsdom.EngagementMetrics, error) {
	return a.svc.Engagement(ctx, in)
}

// DailyTrends implements the domain ServicePort interface
func (a adaptReportsPort) DailyTrends(ctx context.Context, in reportsdom.TrendsInput) (reportsdom.DailyTrends, error) {
	return a.svc.DailyTrends(ctx, in)
}
