// Package domain holds DTOs for channels http and service contracts
package domain

// ListInput filters the channel listing
type ListInput struct {
	ChannelType string `query:"channel_type" json:"channel_type,omitempty" validate:"omitempty,min=1,max=100" example:"Pharmaceutical"`
	MinPosts    int    `query:"min_posts" json:"min_posts,omitempty" validate:"omitempty,min=0" example:"10"`
	ActiveOnly  bool   `query:"active_only" json:"active_only,omitempty" example:"true"`
}

// ActivityInput bounds the per-channel activity window
type ActivityInput struct {
	Days int `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// StatsInput bounds the combined stats window
type StatsInput struct {
	Days int `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// CompareInput names the channel to compare against
type CompareInput struct {
	CompareWith string `query:"compare_with" json:"compare_with" validate:"required,min=1,max=200" example:"lobelia4cosmetics"`
}

// Channel is one warehouse channel with its rollup statistics
type Channel struct {
	ChannelKey      string  `json:"channel_key"`
	ChannelName     string  `json:"channel_name"`
	ChannelType     string  `json:"channel_type"`
	TotalPosts      int64   `json:"total_posts"`
	AvgViews        float64 `json:"avg_views"`
	FirstPostDate   *string `json:"first_post_date"`
	LastPostDate    *string `json:"last_post_date"`
	ImagePercentage float64 `json:"image_percentage"`
	ActivityStatus  string  `json:"activity_status"`
}

// ActivityPoint is one day of posting activity
type ActivityPoint struct {
	Date         string  `json:"date"`
	MessageCount int64   `json:"message_count"`
	AvgViews     float64 `json:"avg_views"`
	AvgForwards  float64 `json:"avg_forwards"`
}

// Stats bundles channel detail, recent activity and product mentions
type Stats struct {
	Channel       Channel         `json:"channel"`
	Activity      []ActivityPoint `json:"activity"`
	TotalMessages int64           `json:"total_messages"`
	TotalImages   int64           `json:"total_images"`
	TopProducts   []string        `json:"top_products"`
}

// MetricDelta compares one metric across two channels, relative and absolute
type MetricDelta struct {
	Channel1             float64 `json:"channel1"`
	Channel2             float64 `json:"channel2"`
	Difference           float64 `json:"difference"`
	PercentageDifference float64 `json:"percentage_difference"`
}

// AbsoluteDelta compares a metric that only makes sense as an absolute gap
type AbsoluteDelta struct {
	Channel1   float64 `json:"channel1"`
	Channel2   float64 `json:"channel2"`
	Difference float64 `json:"difference"`
}

// ComparisonMetrics groups the head-to-head numbers
type ComparisonMetrics struct {
	TotalPosts      MetricDelta   `json:"total_posts"`
	AvgViews        MetricDelta   `json:"avg_views"`
	ImagePercentage AbsoluteDelta `json:"image_percentage"`
}

// Comparison is the head-to-head report for two channels
type Comparison struct {
	Channel1       string            `json:"channel1"`
	Channel2       string            `json:"channel2"`
	Metrics        ComparisonMetrics `json:"metrics"`
	ActivityPeriod string            `json:"activity_period"`
}
