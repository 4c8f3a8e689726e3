package module

import (
	"context"

	analyticsdom "medlens/internal/services/api/analytics/domain"
	analyticssvc "medlens/internal/services/api/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAnalyticsPort adapts the analytics service to the domain port interface
type adaptAnalyticsPort struct{ svc analyticssvc.Service }

// Overview implements the domain ServicePort interface
func (a adaptAnalyticsPort) Overview(ctx context.Context, in analyticsdom.OverviewInput) (analyticsdom.Overview, error) {
	return a.svc.Overview(ctx, in)
}
