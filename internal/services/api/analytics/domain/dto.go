// Package domain holds DTOs for analytics http and service contracts
package domain

// OverviewInput bounds the overview window
type OverviewInput struct {
	Days int `query:"days" json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// MessageStatistics aggregates message traffic in the window
type MessageStatistics struct {
	TotalMessages         int64   `json:"total_messages"`
	ActiveChannels        int64   `json:"active_channels"`
	TotalViews            int64   `json:"total_views"`
	TotalForwards         int64   `json:"total_forwards"`
	AvgViewsPerMessage    float64 `json:"avg_views_per_message"`
	AvgForwardsPerMessage float64 `json:"avg_forwards_per_message"`
}

// ChannelStatistics aggregates the channel dimension as a whole
type ChannelStatistics struct {
	TotalChannels      int64   `json:"total_channels"`
	ChannelTypes       int64   `json:"channel_types"`
	TotalPosts         int64   `json:"total_posts"`
	AvgImagePercentage float64 `json:"avg_image_percentage"`
}

// VisualContent aggregates image detections in the window
type VisualContent struct {
	TotalImages           int64   `json:"total_images"`
	AvgDetectionsPerImage float64 `json:"avg_detections_per_image"`
	ChannelsWithImages    int64   `json:"channels_with_images"`
}

// TopChannel is one channel ranked by total views in the window
type TopChannel struct {
	ChannelName  string `json:"channel_name"`
	ChannelType  string `json:"channel_type"`
	MessageCount int64  `json:"message_count"`
	TotalViews   int64  `json:"total_views"`
}

// Overview is the composed warehouse-wide analytics snapshot
type Overview struct {
	TimePeriod        string            `json:"time_period"`
	MessageStatistics MessageStatistics `json:"message_statistics"`
	ChannelStatistics ChannelStatistics `json:"channel_statistics"`
	VisualContent     VisualContent     `json:"visual_content"`
	TopChannels       []TopChannel      `json:"top_channels"`
}
