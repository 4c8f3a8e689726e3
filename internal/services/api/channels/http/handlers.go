// Package http provides http transport for channels
package http

import (
	stdhttp "net/http"

	"medlens/internal/modkit/httpkit"
	"medlens/internal/services/api/channels/domain"
	svc "medlens/internal/services/api/channels/service"
)

// Register mounts channel endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.ListInput](r, "/", h.list)
	httpkit.Get(r, "/{channel_name}", h.byName)
	httpkit.GetQuery[domain.ActivityInput](r, "/{channel_name}/activity", h.activity)
	httpkit.GetQuery[domain.StatsInput](r, "/{channel_name}/stats", h.stats)
	httpkit.GetQuery[domain.CompareInput](r, "/{channel_name}/comparison", h.compare)
}

type handlers struct{ svc svc.Service }

// @Summary All channels with their statistics
// @Tags Channels
// @Produce json
// @Param channel_type query string false "Filter by channel type"
// @Param min_posts query int false "Minimum number of posts"
// @Param active_only query bool false "Only channels currently marked active"
// @Success 200 {array} domain.Channel "ok"
// @Router /channels [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary One channel by name
// @Tags Channels
// @Produce json
// @Param channel_name path string true "Channel name"
// @Success 200 {object} domain.Channel "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /channels/{channel_name} [get]
func (h *handlers) byName(r *stdhttp.Request) (any, error) {
	return h.svc.ByName(r.Context(), httpkit.Param(r, "channel_name"))
}

// @Summary Daily posting activity for one channel
// @Tags Channels
// @Produce json
// @Param channel_name path string true "Channel name"
// @Param days query int false "Number of days to analyze" default(30)
// @Success 200 {array} domain.ActivityPoint "ok"
// @Router /channels/{channel_name}/activity [get]
func (h *handlers) activity(r *stdhttp.Request, in domain.ActivityInput) (any, error) {
	return h.svc.Activity(r.Context(), httpkit.Param(r, "channel_name"), in)
}

// @Summary Combined statistics for one channel
// @Tags Channels
// @Produce json
// @Param channel_name path string true "Channel name"
// @Param days query int false "Number of days to analyze" default(30)
// @Success 200 {object} domain.Stats "ok"
// @Router /channels/{channel_name}/stats [get]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsInput) (any, error) {
	return h.svc.Stats(r.Context(), httpkit.Param(r, "channel_name"), in)
}

// @Summary Head to head comparison of two channels
// @Tags Channels
// @Produce json
// @Param channel_name path string true "Channel name"
// @Param compare_with query string true "Channel name to compare with"
// @Success 200 {object} domain.Comparison "ok"
// @Router /channels/{channel_name}/comparison [get]
func (h *handlers) compare(r *stdhttp.Request, in domain.CompareInput) (any, error) {
	return h.svc.Compare(r.Context(), httpkit.Param(r, "channel_name"), in)
}
