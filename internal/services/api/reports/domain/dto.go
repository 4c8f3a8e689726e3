// Package domain holds DTOs for reports http and service contracts
package domain

// TopProductsInput bounds the product-mention scan
type TopProductsInput struct {
	Limit int `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	Days  int `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// EngagementInput bounds the engagement window
type EngagementInput struct {
	Days int `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=90" example:"7"`
}

// TrendsInput selects a daily metric series
type TrendsInput struct {
	Metric string `query:"metric" json:"metric,omitempty" validate:"omitempty,oneof=messages views forwards images" example:"messages"`
	Days   int    `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// TopProduct is one product's mention rollup across channels
type TopProduct struct {
	ProductName  string   `json:"product_name"`
	MentionCount int      `json:"mention_count"`
	Channels     []string `json:"channels"`
	AvgViews     float64  `json:"avg_views"`
}

// TimePeriod describes the analyzed trailing window
type TimePeriod struct {
	DaysAnalyzed int    `json:"days_analyzed"`
	Description  string `json:"description"`
}

// TopProductsReport is the full top-products response
type TopProductsReport struct {
	Products      []TopProduct `json:"products"`
	TotalMentions int          `json:"total_mentions"`
	TimePeriod    TimePeriod   `json:"time_period"`
}

// DetectedObject is one detected object label with its frequency
type DetectedObject struct {
	Object string  `json:"object"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// VisualContentStats summarizes image usage across channels
type VisualContentStats struct {
	TotalImages           int              `json:"total_images"`
	ImagesByChannel       map[string]int   `json:"images_by_channel"`
	ImagesByCategory      map[string]int   `json:"images_by_category"`
	AvgDetectionsPerImage float64          `json:"avg_detections_per_image"`
	TopDetectedObjects    []DetectedObject `json:"top_detected_objects"`
}

// Message is a ranked message row in engagement reports
type Message struct {
	MessageID       int64   `json:"message_id"`
	MessageText     string  `json:"message_text"`
	MessageDate     string  `json:"message_date"`
	ChannelName     string  `json:"channel_name"`
	ViewCount       int64   `json:"view_count"`
	ForwardCount    int64   `json:"forward_count"`
	HasImage        bool    `json:"has_image"`
	MessageLength   int     `json:"message_length"`
	EngagementScore float64 `json:"engagement_score"`
}

// EngagementMetrics carries window totals plus the top performers
type EngagementMetrics struct {
	TotalMessages         int64     `json:"total_messages"`
	TotalViews            int64     `json:"total_views"`
	TotalForwards         int64     `json:"total_forwards"`
	AvgViewsPerMessage    float64   `json:"avg_views_per_message"`
	AvgForwardsPerMessage float64   `json:"avg_forwards_per_message"`
	TopPerformingMessages []Message `json:"top_performing_messages"`
}

// TrendPoint is one calendar date in a daily series
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DailyTrends is a daily metric series, ascending by date
type DailyTrends struct {
	Metric string       `json:"metric"`
	Days   int          `json:"days"`
	Data   []TrendPoint `json:"data"`
}
