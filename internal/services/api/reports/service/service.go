// Package service contains report aggregation workflows
package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"medlens/internal/core/products"
	"medlens/internal/modkit/cachekit"
	"medlens/internal/modkit/repokit"
	"medlens/internal/platform/store"
	"medlens/internal/services/api/reports/domain"
	"medlens/internal/services/api/reports/repo"
)

// mention scan is bounded so a busy warehouse cannot blow up the classifier pass
const maxScanRows = 1000

const (
	defaultTopLimit       = 10
	defaultWindowDays     = 30
	defaultEngagementDays = 7
	maxChannelsPerProduct = 5
	topObjectsLimit       = 10
	topMessagesLimit      = 10
)

// Service defines the service contract for reports
type Service interface{ domain.ServicePort }

// Options carries the optional collaborators for the reports service
type Options struct {
	Cache      store.Cache
	Classifier products.Classifier
}

// Svc implements the Service interface
type Svc struct {
	Repo       repo.Repo
	binder     repokit.Binder[repo.Repo]
	db         repokit.TxRunner
	cache      store.Cache
	classifier products.Classifier
}

// New creates a new reports service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts Options) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	cls := opts.Classifier
	if cls == nil {
		cls = products.New()
	}
	return &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		cache:      opts.Cache,
		classifier: cls,
	}
}

// TopProducts counts keyword-classified product mentions over recent messages
func (s *Svc) TopProducts(ctx context.Context, in domain.TopProductsInput) (domain.TopProductsReport, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultTopLimit
	}
	days := in.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	key := cachekit.Key("top_products", "limit", strconv.Itoa(limit), "days", strconv.Itoa(days))
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) (domain.TopProductsReport, error) {
		rows, err := s.Repo.RecentMessages(ctx, days, maxScanRows)
		if err != nil {
			return domain.TopProductsReport{}, err
		}

		counts := map[string]int{}
		channels := map[string][]string{}
		channelSeen := map[string]map[string]bool{}
		viewSums := map[string]int64{}

		for _, row := range rows {
			for _, product := range s.classifier.Classify(row.MessageText) {
				counts[product]++
				viewSums[product] += row.ViewCount
				seen := channelSeen[product]
				if seen == nil {
					seen = map[string]bool{}
					channelSeen[product] = seen
				}
				if !seen[row.ChannelName] {
					seen[row.ChannelName] = true
					channels[product] = append(channels[product], row.ChannelName)
				}
			}
		}

		// catalog order first so the count sort breaks ties deterministically
		mentioned := make([]string, 0, len(counts))
		for _, product := range s.classifier.Products() {
			if counts[product] > 0 {
				mentioned = append(mentioned, product)
			}
		}
		sort.SliceStable(mentioned, func(i, j int) bool {
			return counts[mentioned[i]] > counts[mentioned[j]]
		})
		if len(mentioned) > limit {
			mentioned = mentioned[:limit]
		}

		out := domain.TopProductsReport{
			Products: make([]domain.TopProduct, 0, len(mentioned)),
			TimePeriod: domain.TimePeriod{
				DaysAnalyzed: days,
				Description:  fmt.Sprintf("Last %d days", days),
			},
		}
		for _, product := range mentioned {
			chans := channels[product]
			if len(chans) > maxChannelsPerProduct {
				chans = chans[:maxChannelsPerProduct]
			}
			out.Products = append(out.Products, domain.TopProduct{
				ProductName:  product,
				MentionCount: counts[product],
				Channels:     chans,
				AvgViews:     float64(viewSums[product]) / float64(counts[product]),
			})
			out.TotalMentions += counts[product]
		}
		return out, nil
	})
}

// VisualContent summarizes image detections across the whole warehouse
func (s *Svc) VisualContent(ctx context.Context) (domain.VisualContentStats, error) {
	key := cachekit.Key("visual_content_stats")
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) (domain.VisualContentStats, error) {
		byChannel, err := s.Repo.ImageCountsByChannel(ctx)
		if err != nil {
			return domain.VisualContentStats{}, err
		}
		byCategory, err := s.Repo.ImageCountsByCategory(ctx)
		if err != nil {
			return domain.VisualContentStats{}, err
		}
		topObjects, err := s.Repo.TopDetectedObjects(ctx, topObjectsLimit)
		if err != nil {
			return domain.VisualContentStats{}, err
		}
		totalDetections, err := s.Repo.TotalDetections(ctx)
		if err != nil {
			return domain.VisualContentStats{}, err
		}
		avgDetections, err := s.Repo.AvgDetections(ctx)
		if err != nil {
			return domain.VisualContentStats{}, err
		}

		out := domain.VisualContentStats{
			ImagesByChannel:       make(map[string]int, len(byChannel)),
			ImagesByCategory:      make(map[string]int, len(byCategory)),
			AvgDetectionsPerImage: avgDetections,
			TopDetectedObjects:    make([]domain.DetectedObject, 0, len(topObjects)),
		}
		for _, row := range byChannel {
			out.ImagesByChannel[row.Label] = int(row.Count)
			out.TotalImages += int(row.Count)
		}
		for _, row := range byCategory {
			out.ImagesByCategory[row.Label] = int(row.Count)
		}
		for _, row := range topObjects {
			share := 0.0
			if totalDetections > 0 {
				share = float64(row.Count) / float64(totalDetections)
			}
			out.TopDetectedObjects = append(out.TopDetectedObjects, domain.DetectedObject{
				Object: row.Label,
				Count:  int(row.Count),
				Share:  share,
			})
		}
		return out, nil
	})
}

// Engagement aggregates view/forward totals plus the top messages by views
func (s *Svc) Engagement(ctx context.Context, in domain.EngagementInput) (domain.EngagementMetrics, error) {
	days := in.Days
	if days <= 0 {
		days = defaultEngagementDays
	}

	key := cachekit.Key("engagement_metrics", "days", strconv.Itoa(days))
	return cachekit.Cached(ctx, s.cache, key, cachekit.DefaultTTL, func(ctx context.Context) (domain.EngagementMetrics, error) {
		totals, err := s.Repo.EngagementTotals(ctx, days)
		if err != nil {
			return domain.EngagementMetrics{}, err
		}
		top, err := s.Repo.TopMessagesByViews(ctx, days, topMessagesLimit)
		if err != nil {
			return domain.EngagementMetrics{}, err
		}

		out := domain.EngagementMetrics{
			TotalMessages:         totals.TotalMessages,
			TotalViews:            totals.TotalViews,
			TotalForwards:         totals.TotalForwards,
			AvgViewsPerMessage:    totals.AvgViews,
			AvgForwardsPerMessage: totals.AvgForwards,
			TopPerformingMessages: make([]domain.Message, 0, len(top)),
		}
		for _, row := range top {
			out.TopPerformingMessages = append(out.TopPerformingMessages, domain.Message{
				MessageID:       row.MessageID,
				MessageText:     truncate(row.MessageText, 200),
				MessageDate:     row.MessageDate,
				ChannelName:     row.ChannelName,
				ViewCount:       row.ViewCount,
				ForwardCount:    row.ForwardCount,
				HasImage:        row.HasImage,
				MessageLength:   row.MessageLength,
				EngagementScore: row.EngagementScore,
			})
		}
		return out, nil
	})
}

// DailyTrends returns one point per calendar date that has matching rows
func (s *Svc) DailyTrends(ctx context.Context, in domain.TrendsInput) (domain.DailyTrends, error) {
	metric := in.Metric
	if metric == "" {
		metric = "messages"
	}
	days := in.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	rows, err := s.Repo.DailyMetric(ctx, metric, days)
	if err != nil {
		return domain.DailyTrends{}, err
	}
	out := domain.DailyTrends{
		Metric: metric,
		Days:   days,
		Data:   make([]domain.TrendPoint, 0, len(rows)),
	}
	for _, row := range rows {
		out.Data = append(out.Data, domain.TrendPoint{Date: row.Date, Value: row.Value})
	}
	return out, nil
}

// truncate trims to n runes and marks the cut, matching what the search views do
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
