// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"medlens/internal/modkit/httpkit"
	"medlens/internal/services/api/analytics/domain"
	svc "medlens/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.OverviewInput](r, "/overview", h.overview)
}

type handlers struct{ svc svc.Service }

// @Summary Warehouse-wide analytics snapshot
// @Tags Analytics
// @Produce json
// @Param days query int false "Number of days to analyze" default(30)
// @Success 200 {object} domain.Overview "ok"
// @Router /analytics/overview [get]
func (h *handlers) overview(r *stdhttp.Request, in domain.OverviewInput) (any, error) {
	return h.svc.Overview(r.Context(), in)
}
