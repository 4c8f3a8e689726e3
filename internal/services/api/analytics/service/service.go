// Package service contains the analytics overview workflow
package service

import (
	"context"
	"fmt"
	"strconv"

	"medlens/internal/modkit/cachekit"
	"medlens/internal/modkit/repokit"
	"medlens/internal/platform/store"
	"medlens/internal/services/api/analytics/domain"
	"medlens/internal/services/api/analytics/repo"
)

const (
	defaultWindowDays = 30
	topChannelsLimit  = 5
)

// Service defines the service contract for analytics
type Service interface{ domain.ServicePort }

// Options carries the optional collaborators for the analytics service
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

// New creates a new analytics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("analytics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analytics.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cache: opts.Cache}
}

// Overview composes the four warehouse aggregates into one snapshot
func (s *Svc) Overview(ctx context.Context, in domain.OverviewInput) (domain.Overview, error) {
	days := in.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	key := cachekit.Key("analytics_overview", "days", strconv.Itoa(days))
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) (domain.Overview, error) {
		messages, err := s.Repo.MessageStats(ctx, days)
		if err != nil {
			return domain.Overview{}, err
		}
		channels, err := s.Repo.ChannelStats(ctx)
		if err != nil {
			return domain.Overview{}, err
		}
		visual, err := s.Repo.VisualStats(ctx, days)
		if err != nil {
			return domain.Overview{}, err
		}
		top, err := s.Repo.TopChannels(ctx, days, topChannelsLimit)
		if err != nil {
			return domain.Overview{}, err
		}

		out := domain.Overview{
			TimePeriod: fmt.Sprintf("Last %d days", days),
			MessageStatistics: domain.MessageStatistics{
				TotalMessages:         messages.TotalMessages,
				ActiveChannels:        messages.ActiveChannels,
				TotalViews:            messages.TotalViews,
				TotalForwards:         messages.TotalForwards,
				AvgViewsPerMessage:    messages.AvgViews,
				AvgForwardsPerMessage: messages.AvgForwards,
			},
			ChannelStatistics: domain.ChannelStatistics{
				TotalChannels:      channels.TotalChannels,
				ChannelTypes:       channels.ChannelTypes,
				TotalPosts:         channels.TotalPosts,
				AvgImagePercentage: channels.AvgImagePercentage,
			},
			VisualContent: domain.VisualContent{
				TotalImages:           visual.TotalImages,
				AvgDetectionsPerImage: visual.AvgDetections,
				ChannelsWithImages:    visual.ChannelsWithImages,
			},
			TopChannels: make([]domain.TopChannel, 0, len(top)),
		}
		for _, row := range top {
			out.TopChannels = append(out.TopChannels, domain.TopChannel{
				ChannelName:  row.ChannelName,
				ChannelType:  row.ChannelType,
				MessageCount: row.MessageCount,
				TotalViews:   row.TotalViews,
			})
		}
		return out, nil
	})
}
