// Package service contains message search workflows
package service

import (
	"context"
	"strconv"
	"strings"

	"medlens/internal/modkit/cachekit"
	"medlens/internal/modkit/repokit"
	perr "medlens/internal/platform/errors"
	"medlens/internal/platform/store"
	"medlens/internal/services/api/search/domain"
	"medlens/internal/services/api/search/repo"
)

const (
	defaultPageSize     = 20
	defaultPopularLimit = 10
	searchSnippetRunes  = 200
	searchExcerptRunes  = 500
)

// timeframeDays maps the public popularity windows to trailing day counts
var timeframeDays = map[string]int{
	"day":   1,
	"week":  7,
	"month": 30,
}

// Service defines the service contract for message search
type Service interface{ domain.ServicePort }

// Options carries the optional collaborators for the search service
type Options struct {
	Cache store.Cache
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cache  store.Cache
}

// New creates a new search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cache: opts.Cache}
}

// Search runs a case-insensitive substring search with optional filters
// an unknown query yields an empty result, never an error
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	key := cachekit.Key("search_messages",
		"query", in.Query,
		"channel", in.ChannelName,
		"start", in.StartDate,
		"end", in.EndDate,
		"images", boolKey(in.HasImages),
		"views", intKey(in.MinViews),
		"limit", strconv.Itoa(limit),
	)
	messages, err := cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) ([]domain.Message, error) {
		rows, err := s.Repo.Search(ctx, repo.Filter{
			Query:       in.Query,
			ChannelName: in.ChannelName,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			HasImages:   in.HasImages,
			MinViews:    in.MinViews,
			Limit:       limit,
		})
		if err != nil {
			return nil, err
		}
		out := make([]domain.Message, 0, len(rows))
		for _, r := range rows {
			out = append(out, toMessage(r, searchExcerptRunes))
		}
		return out, nil
	})
	if err != nil {
		return domain.SearchResult{}, err
	}

	return domain.SearchResult{
		Query:        in.Query,
		TotalResults: len(messages),
		Messages:     messages,
		Page:         page,
		TotalPages:   totalPages(len(messages), limit),
	}, nil
}

// Popular ranks messages by views inside a named trailing window
func (s *Svc) Popular(ctx context.Context, in domain.PopularInput) (domain.PopularResult, error) {
	timeframe := in.Timeframe
	if timeframe == "" {
		timeframe = "week"
	}
	days, ok := timeframeDays[timeframe]
	if !ok {
		return domain.PopularResult{}, perr.InvalidArgf("invalid timeframe %q", timeframe)
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	rows, err := s.Repo.Popular(ctx, days, limit)
	if err != nil {
		return domain.PopularResult{}, err
	}
	out := domain.PopularResult{
		Timeframe: timeframe,
		Days:      days,
		Messages:  make([]domain.PopularMessage, 0, len(rows)),
	}
	for _, r := range rows {
		out.Messages = append(out.Messages, domain.PopularMessage{
			Message:   toMessage(r, searchSnippetRunes),
			Timeframe: timeframe,
		})
	}
	return out, nil
}

// ByID fetches one message, demanding a channel name when the id is ambiguous
func (s *Svc) ByID(ctx context.Context, id int64, in domain.DetailInput) (domain.Detail, error) {
	rows, err := s.Repo.ByID(ctx, id, in.ChannelName)
	if err != nil {
		return domain.Detail{}, err
	}
	if len(rows) == 0 {
		return domain.Detail{}, perr.NotFoundf("message %d not found", id)
	}
	if len(rows) > 1 && in.ChannelName == "" {
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.ChannelName)
		}
		return domain.Detail{}, perr.InvalidArgf(
			"multiple messages found with id %d, specify channel_name: %s",
			id, strings.Join(names, ", "),
		)
	}

	row := rows[0]
	out := domain.Detail{Message: toMessage(row, 0)}

	det, ok, err := s.Repo.Detection(ctx, id, row.ChannelName)
	if err != nil {
		return domain.Detail{}, err
	}
	if ok {
		out.ImageAnalysis = &domain.ImageAnalysis{
			Category:        det.Category,
			DetectedObjects: det.DetectedObjects,
			Confidence:      det.AvgConfidence,
		}
	}
	return out, nil
}

// toMessage converts a row, truncating text when maxRunes > 0
func toMessage(r repo.RowMessage, maxRunes int) domain.Message {
	text := r.MessageText
	if maxRunes > 0 {
		text = truncate(text, maxRunes)
	}
	return domain.Message{
		MessageID:       r.MessageID,
		MessageText:     text,
		MessageDate:     r.MessageDate,
		ChannelName:     r.ChannelName,
		ViewCount:       r.ViewCount,
		ForwardCount:    r.ForwardCount,
		HasImage:        r.HasImage,
		MessageLength:   r.MessageLength,
		EngagementScore: r.EngagementScore,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func totalPages(n, limit int) int {
	pages := (n + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

func boolKey(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func intKey(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
