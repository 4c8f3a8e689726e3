package module

import (
	"context"

	searchdom "medlens/internal/services/api/search/domain"
	searchsvc "medlens/internal/services/api/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSearchPort adapts the search service to the domain port interface
type adaptSearchPort struct{ svc searchsvc.Service }

// Search implements the domain ServicePort interface
func (a adaptSearchPort) Search(ctx context.Context, in searchdom.SearchInput) (searchdom.SearchResult, error) {
	return a.svc.Search(ctx, in)
}

// Popular implements the domain ServicePort interface
func (a adaptSearchPort) Popular(ctx context.Context, in searchdom.PopularInput) (searchdom.PopularResult, error) {
	return a.svc.Popular(ctx, in)
}

// ByID implements the domain ServicePort interface
func (a adaptSearchPort) ByID(ctx context.Context, id int64, in searchdom.DetailInput) (searchdom.Detail, error) {
	return a.svc.ByID(ctx, id, in)
}
