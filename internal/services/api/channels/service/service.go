// Package service contains channel query workflows
package service

import (
	"context"
	"math"
	"strconv"

	"medlens/internal/modkit/cachekit"
	"medlens/internal/modkit/repokit"
	perr "medlens/internal/platform/errors"
	"medlens/internal/platform/store"
	"medlens/internal/services/api/channels/domain"
	"medlens/internal/services/api/channels/repo"
	reportsdom "medlens/internal/services/api/reports/domain"
)

const (
	defaultWindowDays = 30
	statsProductScan  = 20
	maxStatsProducts  = 5
	activeStatus      = "Active"
	comparisonPeriod  = "Last 30 days"
)

// Service defines the service contract for channels
type Service interface{ domain.ServicePort }

// Options carries the optional collaborators for the channels service
type Options struct {
	Cache    store.Cache
	Products reportsdom.ServicePort
}

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	cache    store.Cache
	products reportsdom.ServicePort
}

// New creates a new channels service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("channels.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("channels.Service requires a non nil Repo binder")
	}
	if opts.Products == nil {
		panic("channels.Service requires the reports port")
	}
	return &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		cache:    opts.Cache,
		products: opts.Products,
	}
}

// List returns all channels ordered by total posts, filtered in memory
// so the unfiltered listing stays a single cacheable unit
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Channel, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Channel, 0, len(all))
	for _, c := range all {
		if in.ChannelType != "" && c.ChannelType != in.ChannelType {
			continue
		}
		if in.MinPosts > 0 && c.TotalPosts < int64(in.MinPosts) {
			continue
		}
		if in.ActiveOnly && c.ActivityStatus != activeStatus {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ByName returns a single channel or NotFound
func (s *Svc) ByName(ctx context.Context, name string) (domain.Channel, error) {
	key := cachekit.Key("channel", "name", name)
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) (domain.Channel, error) {
		row, ok, err := s.Repo.ByName(ctx, name)
		if err != nil {
			return domain.Channel{}, err
		}
		if !ok {
			return domain.Channel{}, perr.NotFoundf("channel %q not found", name)
		}
		return toChannel(row), nil
	})
}

// Activity returns the channel's daily activity, newest first
// a quiet channel yields an empty slice; a missing one yields NotFound
func (s *Svc) Activity(ctx context.Context, name string, in domain.ActivityInput) ([]domain.ActivityPoint, error) {
	days := in.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	key := cachekit.Key("channel_activity", "name", name, "days", strconv.Itoa(days))
	points, err := cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) ([]domain.ActivityPoint, error) {
		rows, err := s.Repo.Activity(ctx, name, days)
		if err != nil {
			return nil, err
		}
		out := make([]domain.ActivityPoint, 0, len(rows))
		for _, r := range rows {
			out = append(out, domain.ActivityPoint{
				Date:         r.Date,
				MessageCount: r.MessageCount,
				AvgViews:     r.AvgViews,
				AvgForwards:  r.AvgForwards,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		if _, err := s.ByName(ctx, name); err != nil {
			return nil, err
		}
	}
	return points, nil
}

// Stats combines channel detail, activity, image count and product mentions
func (s *Svc) Stats(ctx context.Context, name string, in domain.StatsInput) (domain.Stats, error) {
	days := in.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	channel, err := s.ByName(ctx, name)
	if err != nil {
		return domain.Stats{}, err
	}
	activity, err := s.Activity(ctx, name, domain.ActivityInput{Days: days})
	if err != nil {
		return domain.Stats{}, err
	}

	report, err := s.products.TopProducts(ctx, reportsdom.TopProductsInput{Limit: statsProductScan, Days: days})
	if err != nil {
		return domain.Stats{}, err
	}
	var top []string
	for _, p := range report.Products {
		if !mentionsChannel(p.Channels, name) {
			continue
		}
		top = append(top, p.ProductName)
		if len(top) == maxStatsProducts {
			break
		}
	}

	images, err := s.Repo.ImageCount(ctx, name)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		Channel:       channel,
		Activity:      activity,
		TotalMessages: channel.TotalPosts,
		TotalImages:   images,
		TopProducts:   top,
	}, nil
}

// Compare reports absolute and relative gaps between two channels
func (s *Svc) Compare(ctx context.Context, name string, in domain.CompareInput) (domain.Comparison, error) {
	ch1, err := s.ByName(ctx, name)
	if err != nil {
		return domain.Comparison{}, err
	}
	ch2, err := s.ByName(ctx, in.CompareWith)
	if err != nil {
		return domain.Comparison{}, err
	}

	return domain.Comparison{
		Channel1: name,
		Channel2: in.CompareWith,
		Metrics: domain.ComparisonMetrics{
			TotalPosts:      delta(float64(ch1.TotalPosts), float64(ch2.TotalPosts)),
			AvgViews:        delta(ch1.AvgViews, ch2.AvgViews),
			ImagePercentage: absDelta(ch1.ImagePercentage, ch2.ImagePercentage),
		},
		ActivityPeriod: comparisonPeriod,
	}, nil
}

func (s *Svc) all(ctx context.Context) ([]domain.Channel, error) {
	key := cachekit.Key("channels_all")
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) ([]domain.Channel, error) {
		rows, err := s.Repo.All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Channel, 0, len(rows))
		for _, r := range rows {
			out = append(out, toChannel(r))
		}
		return out, nil
	})
}

func toChannel(r repo.RowChannel) domain.Channel {
	return domain.Channel{
		ChannelKey:      r.ChannelKey,
		ChannelName:     r.ChannelName,
		ChannelType:     r.ChannelType,
		TotalPosts:      r.TotalPosts,
		AvgViews:        r.AvgViews,
		FirstPostDate:   r.FirstPostDate,
		LastPostDate:    r.LastPostDate,
		ImagePercentage: r.ImagePercentage,
		ActivityStatus:  r.ActivityStatus,
	}
}

// delta guards the percentage denominator so a silent channel never divides by zero
func delta(a, b float64) domain.MetricDelta {
	return domain.MetricDelta{
		Channel1:             a,
		Channel2:             b,
		Difference:           a - b,
		PercentageDifference: (a - b) / math.Max(b, 1) * 100,
	}
}

func absDelta(a, b float64) domain.AbsoluteDelta {
	return domain.AbsoluteDelta{Channel1: a, Channel2: b, Difference: a - b}
}

func mentionsChannel(channels []string, name string) bool {
	for _, c := range channels {
		if c == name {
			return true
		}
	}
	return false
}
