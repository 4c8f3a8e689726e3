// Package repo provides postgres access for channels
package repo

import (
	"context"

	"medlens/internal/modkit/repokit"
)

// Repo defines the repository contract for channels
type Repo interface {
	All(ctx context.Context) ([]RowChannel, error)
	ByName(ctx context.Context, name string) (RowChannel, bool, error)
	Activity(ctx context.Context, name string, days int) ([]RowActivity, error)
	ImageCount(ctx context.Context, name string) (int64, error)
}

// RowChannel is one dim_channels row
type RowChannel struct {
	ChannelKey      string
	ChannelName     string
	ChannelType     string
	TotalPosts      int64
	AvgViews        float64
	FirstPostDate   *string
	LastPostDate    *string
	ImagePercentage float64
	ActivityStatus  string
}

// RowActivity is one day of per-channel activity
type RowActivity struct {
	Date         string
	MessageCount int64
	AvgViews     float64
	AvgForwards  float64
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

const channelCols = `
channel_key::text, channel_name, channel_type,
coalesce(total_posts, 0), coalesce(avg_views, 0),
first_post_date::text, last_post_date::text,
coalesce(image_percentage, 0), coalesce(activity_status, '')
`

func scanChannel(row repokit.Row, rr *RowChannel) error {
	return row.Scan(
		&rr.ChannelKey,
		&rr.ChannelName,
		&rr.ChannelType,
		&rr.TotalPosts,
		&rr.AvgViews,
		&rr.FirstPostDate,
		&rr.LastPostDate,
		&rr.ImagePercentage,
		&rr.ActivityStatus,
	)
}

func (r *queries) All(ctx context.Context) ([]RowChannel, error) {
	const sql = `
select ` + channelCols + `
from marts.dim_channels
order by total_posts desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowChannel
	for rows.Next() {
		var rr RowChannel
		if err := scanChannel(rows, &rr); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) ByName(ctx context.Context, name string) (RowChannel, bool, error) {
	const sql = `
select ` + channelCols + `
from marts.dim_channels
where channel_name = $1
`
	rows, err := r.q.Query(ctx, sql, name)
	if err != nil {
		return RowChannel{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return RowChannel{}, false, rows.Err()
	}
	var rr RowChannel
	if err := scanChannel(rows, &rr); err != nil {
		return RowChannel{}, false, err
	}
	return rr, true, rows.Err()
}

func (r *queries) Activity(ctx context.Context, name string, days int) ([]RowActivity, error) {
	const sql = `
select dd.full_date::text,
count(fm.message_key),
coalesce(avg(fm.view_count), 0),
coalesce(avg(fm.forward_count), 0)
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where dc.channel_name = $1
and dd.full_date >= current_date - $2::int
group by dd.full_date
order by dd.full_date desc
`
	rows, err := r.q.Query(ctx, sql, name, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowActivity
	for rows.Next() {
		var rr RowActivity
		if err := rows.Scan(&rr.Date, &rr.MessageCount, &rr.AvgViews, &rr.AvgForwards); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) ImageCount(ctx context.Context, name string) (int64, error) {
	const sql = `
select count(*)
from marts.fct_image_detections fid
join marts.dim_channels dc on fid.channel_key = dc.channel_key
where dc.channel_name = $1
`
	var n int64
	if err := r.q.QueryRow(ctx, sql, name).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
