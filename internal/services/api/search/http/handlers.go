// Package http provides http transport for message search
package http

import (
	stdhttp "net/http"
	"strconv"

	"medlens/internal/modkit/httpkit"
	perr "medlens/internal/platform/errors"
	"medlens/internal/services/api/search/domain"
	svc "medlens/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/messages", h.search)
	httpkit.GetQuery[domain.PopularInput](r, "/messages/popular", h.popular)
	httpkit.GetQuery[domain.DetailInput](r, "/messages/{message_id}", h.byID)
}

type handlers struct{ svc svc.Service }

// @Summary Search messages by substring with optional filters
// @Tags Search
// @Produce json
// @Param query query string true "Search query"
// @Param channel_name query string false "Filter by channel name"
// @Param start_date query string false "Start date YYYY-MM-DD"
// @Param end_date query string false "End date YYYY-MM-DD"
// @Param has_images query bool false "Filter by image presence"
// @Param min_views query int false "Minimum view count"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} domain.SearchResult "ok"
// @Router /search/messages [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Most viewed messages in a named timeframe
// @Tags Search
// @Produce json
// @Param timeframe query string false "Timeframe: day, week, month" default(week)
// @Param limit query int false "Number of messages to return" default(10)
// @Success 200 {object} domain.PopularResult "ok"
// @Router /search/messages/popular [get]
func (h *handlers) popular(r *stdhttp.Request, in domain.PopularInput) (any, error) {
	return h.svc.Popular(r.Context(), in)
}

// @Summary One message by id, with image analysis when present
// @Tags Search
// @Produce json
// @Param message_id path int true "Message id"
// @Param channel_name query string false "Channel name for disambiguation"
// @Success 200 {object} domain.Detail "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /search/messages/{message_id} [get]
func (h *handlers) byID(r *stdhttp.Request, in domain.DetailInput) (any, error) {
	raw := httpkit.Param(r, "message_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("invalid message id %q", raw)
	}
	return h.svc.ByID(r.Context(), id, in)
}
