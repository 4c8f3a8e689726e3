// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"medlens/internal/modkit/httpkit"
	"medlens/internal/services/api/reports/domain"
	svc "medlens/internal/services/api/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.TopProductsInput](r, "/top-products", h.topProducts)
	httpkit.Get(r, "/visual-content", h.visualContent)
	httpkit.GetQuery[domain.EngagementInput](r, "/engagement", h.engagement)
	httpkit.GetQuery[domain.TrendsInput](r, "/trends/daily", h.dailyTrends)
}

type handlers struct{ svc svc.Service }

// @Summary Top mentioned medical products across all channels
// @Tags Reports
// @Produce json
// @Param limit query int false "Number of top products to return" default(10)
// @Param days query int false "Number of days to analyze" default(30)
// @Success 200 {object} domain.TopProductsReport "ok"
// @Router /reports/top-products [get]
func (h *handlers) topProducts(r *stdhttp.Request, in domain.TopProductsInput) (any, error) {
	return h.svc.TopProducts(r.Context(), in)
}

// @Summary Image usage statistics across channels
// @Tags Reports
// @Produce json
// @Success 200 {object} domain.VisualContentStats "ok"
// @Router /reports/visual-content [get]
func (h *handlers) visualContent(r *stdhttp.Request) (any, error) {
	return h.svc.VisualContent(r.Context())
}

// @Summary Engagement totals plus top performing messages
// @Tags Reports
// @Produce json
// @Param days query int false "Number of days to analyze" default(7)
// @Success 200 {object} domain.EngagementMetrics "ok"
// @Router /reports/engagement [get]
func (h *handlers) engagement(r *stdhttp.Request, in domain.EngagementInput) (any, error) {
	return h.svc.Engagement(r.Context(), in)
}

// @Summary Daily trend series for one metric
// @Tags Reports
// @Produce json
// @Param metric query string false "Metric to analyze: messages, views, forwards, images" default(messages)
// @Param days query int false "Number of days to analyze" default(30)
// @Success 200 {object} domain.DailyTrends "ok"
// @Router /reports/trends/daily [get]
func (h *handlers) dailyTrends(r *stdhttp.Request, in domain.TrendsInput) (any, error) {
	return h.svc.DailyTrends(r.Context(), in)
}
