// Package repo provides postgres access for analytics
package repo

import (
	"context"

	"medlens/internal/modkit/repokit"
)

// Repo defines the repository contract for analytics
type Repo interface {
	MessageStats(ctx context.Context, days int) (RowMessageStats, error)
	ChannelStats(ctx context.Context) (RowChannelStats, error)
	VisualStats(ctx context.Context, days int) (RowVisualStats, error)
	TopChannels(ctx context.Context, days, limit int) ([]RowTopChannel, error)
}

// RowMessageStats holds window-wide message aggregates
type RowMessageStats struct {
	TotalMessages  int64
	ActiveChannels int64
	TotalViews     int64
	TotalForwards  int64
	AvgViews       float64
	AvgForwards    float64
}

// RowChannelStats holds whole-dimension channel aggregates
type RowChannelStats struct {
	TotalChannels      int64
	ChannelTypes       int64
	TotalPosts         int64
	AvgImagePercentage float64
}

// RowVisualStats holds window-wide detection aggregates
type RowVisualStats struct {
	TotalImages        int64
	AvgDetections      float64
	ChannelsWithImages int64
}

// RowTopChannel is one channel ranked by total views
type RowTopChannel struct {
	ChannelName  string
	ChannelType  string
	MessageCount int64
	TotalViews   int64
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) MessageStats(ctx context.Context, days int) (RowMessageStats, error) {
	const sql = `
select
count(*) as total_messages,
count(distinct fm.channel_key) as active_channels,
coalesce(sum(fm.view_count), 0) as total_views,
coalesce(sum(fm.forward_count), 0) as total_forwards,
coalesce(avg(fm.view_count), 0) as avg_views,
coalesce(avg(fm.forward_count), 0) as avg_forwards
from marts.fct_messages fm
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
`
	var s RowMessageStats
	err := r.q.QueryRow(ctx, sql, days).Scan(
		&s.TotalMessages,
		&s.ActiveChannels,
		&s.TotalViews,
		&s.TotalForwards,
		&s.AvgViews,
		&s.AvgForwards,
	)
	if err != nil {
		return RowMessageStats{}, err
	}
	return s, nil
}

func (r *queries) ChannelStats(ctx context.Context) (RowChannelStats, error) {
	const sql = `
select
count(*) as total_channels,
count(distinct channel_type) as channel_types,
coalesce(sum(total_posts), 0) as total_posts,
coalesce(avg(image_percentage), 0) as avg_image_percentage
from marts.dim_channels
`
	var s RowChannelStats
	err := r.q.QueryRow(ctx, sql).Scan(
		&s.TotalChannels,
		&s.ChannelTypes,
		&s.TotalPosts,
		&s.AvgImagePercentage,
	)
	if err != nil {
		return RowChannelStats{}, err
	}
	return s, nil
}

func (r *queries) VisualStats(ctx context.Context, days int) (RowVisualStats, error) {
	const sql = `
select
count(*) as total_images,
coalesce(avg(fid.detection_count), 0) as avg_detections,
count(distinct fid.channel_key) as channels_with_images
from marts.fct_image_detections fid
join marts.dim_dates dd on fid.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
`
	var s RowVisualStats
	err := r.q.QueryRow(ctx, sql, days).Scan(
		&s.TotalImages,
		&s.AvgDetections,
		&s.ChannelsWithImages,
	)
	if err != nil {
		return RowVisualStats{}, err
	}
	return s, nil
}

func (r *queries) TopChannels(ctx context.Context, days, limit int) ([]RowTopChannel, error) {
	const sql = `
select dc.channel_name, dc.channel_type,
count(fm.message_key) as message_count,
coalesce(sum(fm.view_count), 0) as total_views
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
group by dc.channel_name, dc.channel_type
order by total_views desc
limit $2
`
	rows, err := r.q.Query(ctx, sql, days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowTopChannel
	for rows.Next() {
		var rr RowTopChannel
		if err := rows.Scan(&rr.ChannelName, &rr.ChannelType, &rr.MessageCount, &rr.TotalViews); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
