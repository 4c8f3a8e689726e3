// Package domain holds DTOs for message search http and service contracts
package domain

// SearchInput filters the full text message search
type SearchInput struct {
	Query       string `query:"query" json:"query" validate:"required,min=1,max=100" example:"paracetamol"`
	ChannelName string `query:"channel_name" json:"channel_name,omitempty" validate:"omitempty,min=1,max=200" example:"tikvahpharma"`
	StartDate   string `query:"start_date" json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-07-01"`
	EndDate     string `query:"end_date" json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-08-01"`
	HasImages   *bool  `query:"has_images" json:"has_images,omitempty" example:"true"`
	MinViews    *int   `query:"min_views" json:"min_views,omitempty" validate:"omitempty,min=0" example:"100"`
	Page        int    `query:"page" json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit       int    `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}

// PopularInput selects the popularity window
type PopularInput struct {
	Timeframe string `query:"timeframe" json:"timeframe,omitempty" validate:"omitempty,oneof=day week month" example:"week"`
	Limit     int    `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
}

// DetailInput optionally disambiguates a message id shared across channels
type DetailInput struct {
	ChannelName string `query:"channel_name" json:"channel_name,omitempty" validate:"omitempty,min=1,max=200" example:"tikvahpharma"`
}

// Message is one message row joined to its channel and date
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

// SearchResult wraps matches with their query context
type SearchResult struct {
	Query        string    `json:"query"`
	TotalResults int       `json:"total_results"`
	Messages     []Message `json:"messages"`
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
}

// PopularMessage is a ranked message echoing the timeframe it was ranked in
type PopularMessage struct {
	Message
	Timeframe string `json:"timeframe"`
}

// PopularResult wraps the ranked messages with the resolved window
type PopularResult struct {
	Timeframe string           `json:"timeframe"`
	Days      int              `json:"days"`
	Messages  []PopularMessage `json:"messages"`
}

// ImageAnalysis is the detection summary attached to a message detail
type ImageAnalysis struct {
	Category        string   `json:"category"`
	DetectedObjects []string `json:"detected_objects"`
	Confidence      float64  `json:"confidence"`
}

// Detail is a single message with its optional image analysis
type Detail struct {
	Message
	ImageAnalysis *ImageAnalysis `json:"image_analysis,omitempty"`
}
