// Package repo provides postgres access for reports
package repo

import (
	"context"

	"medlens/internal/modkit/repokit"
	perr "medlens/internal/platform/errors"
)

// Repo defines the repository contract for reports
type Repo interface {
	RecentMessages(ctx context.Context, days, limit int) ([]RowMention, error)
	ImageCountsByChannel(ctx context.Context) ([]RowLabelCount, error)
	ImageCountsByCategory(ctx context.Context) ([]RowLabelCount, error)
	TopDetectedObjects(ctx context.Context, limit int) ([]RowLabelCount, error)
	TotalDetections(ctx context.Context) (int64, error)
	AvgDetections(ctx context.Context) (float64, error)
	EngagementTotals(ctx context.Context, days int) (RowEngagementTotals, error)
	TopMessagesByViews(ctx context.Context, days, limit int) ([]RowMessage, error)
	DailyMetric(ctx context.Context, metric string, days int) ([]RowTrend, error)
}

// RowMention is the raw material for product mention counting
type RowMention struct {
	MessageText string
	ChannelName string
	ViewCount   int64
}

// RowLabelCount is a label with an occurrence count
type RowLabelCount struct {
	Label string
	Count int64
}

// RowEngagementTotals holds window-wide message aggregates
type RowEngagementTotals struct {
	TotalMessages int64
	TotalViews    int64
	TotalForwards int64
	AvgViews      float64
	AvgForwards   float64
}

// RowMessage is a message row joined to its channel and date
type RowMessage struct {
	MessageID       int64
	MessageText     string
	ChannelName     string
	ViewCount       int64
	ForwardCount    int64
	HasImage        bool
	MessageLength   int
	EngagementScore float64
	MessageDate     string
}

// RowTrend is one date bucket of a daily metric
type RowTrend struct {
	Date  string
	Value float64
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

func (r *queries) RecentMessages(ctx context.Context, days, limit int) ([]RowMention, error) {
	const sql = `
select fm.message_text, dc.channel_name, coalesce(fm.view_count, 0)
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
limit $2
`
	rows, err := r.q.Query(ctx, sql, days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowMention
	for rows.Next() {
		var rr RowMention
		if err := rows.Scan(&rr.MessageText, &rr.ChannelName, &rr.ViewCount); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) ImageCountsByChannel(ctx context.Context) ([]RowLabelCount, error) {
	const sql = `
select dc.channel_name, count(fid.detection_key) as image_count
from marts.fct_image_detections fid
join marts.dim_channels dc on fid.channel_key = dc.channel_key
group by dc.channel_name
order by image_count desc
`
	return r.labelCounts(ctx, sql)
}

func (r *queries) ImageCountsByCategory(ctx context.Context) ([]RowLabelCount, error) {
	const sql = `
select image_category, count(*) as image_count
from marts.fct_image_detections
group by image_category
order by image_count desc
`
	return r.labelCounts(ctx, sql)
}

func (r *queries) TopDetectedObjects(ctx context.Context, limit int) ([]RowLabelCount, error) {
	const sql = `
select unnest(detected_objects) as object_name, count(*) as detection_count
from marts.fct_image_detections
where detected_objects is not null
group by object_name
order by detection_count desc
limit $1
`
	return r.labelCounts(ctx, sql, limit)
}

func (r *queries) labelCounts(ctx context.Context, sql string, args ...any) ([]RowLabelCount, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowLabelCount
	for rows.Next() {
		var rr RowLabelCount
		if err := rows.Scan(&rr.Label, &rr.Count); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) TotalDetections(ctx context.Context) (int64, error) {
	const sql = `select coalesce(sum(detection_count), 0) from marts.fct_image_detections`
	var n int64
	if err := r.q.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) AvgDetections(ctx context.Context) (float64, error) {
	const sql = `
select coalesce(avg(detection_count), 0)
from marts.fct_image_detections
where detection_count > 0
`
	var avg float64
	if err := r.q.QueryRow(ctx, sql).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *queries) EngagementTotals(ctx context.Context, days int) (RowEngagementTotals, error) {
	const sql = `
select
count(*) as total_messages,
coalesce(sum(fm.view_count), 0) as total_views,
coalesce(sum(fm.forward_count), 0) as total_forwards,
coalesce(avg(fm.view_count), 0) as avg_views,
coalesce(avg(fm.forward_count), 0) as avg_forwards
from marts.fct_messages fm
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
`
	var t RowEngagementTotals
	err := r.q.QueryRow(ctx, sql, days).Scan(
		&t.TotalMessages,
		&t.TotalViews,
		&t.TotalForwards,
		&t.AvgViews,
		&t.AvgForwards,
	)
	if err != nil {
		return RowEngagementTotals{}, err
	}
	return t, nil
}

func (r *queries) TopMessagesByViews(ctx context.Context, days, limit int) ([]RowMessage, error) {
	const sql = `
select fm.message_id, fm.message_text, dc.channel_name,
coalesce(fm.view_count, 0), coalesce(fm.forward_count, 0),
fm.has_image_flag, fm.message_length,
coalesce(fm.engagement_score, 0), dd.full_date::text
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
order by fm.view_count desc
limit $2
`
	rows, err := r.q.Query(ctx, sql, days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowMessage
	for rows.Next() {
		var rr RowMessage
		if err := rows.Scan(
			&rr.MessageID,
			&rr.MessageText,
			&rr.ChannelName,
			&rr.ViewCount,
			&rr.ForwardCount,
			&rr.HasImage,
			&rr.MessageLength,
			&rr.EngagementScore,
			&rr.MessageDate,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// daily metric series keyed by a fixed whitelist so callers can never inject SQL
var dailyMetricSQL = map[string]string{
	"messages": `
select dd.full_date::text, count(fm.message_key)::float8 as value
from marts.fct_messages fm
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
group by dd.full_date
order by dd.full_date
`,
	"views": `
select dd.full_date::text, coalesce(sum(fm.view_count), 0)::float8 as value
from marts.fct_messages fm
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
group by dd.full_date
order by dd.full_date
`,
	"forwards": `
select dd.full_date::text, coalesce(sum(fm.forward_count), 0)::float8 as value
from marts.fct_messages fm
join marts.dim_dates dd on fm.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
group by dd.full_date
order by dd.full_date
`,
	"images": `
select dd.full_date::text, count(fid.detection_key)::float8 as value
from marts.fct_image_detections fid
join marts.dim_dates dd on fid.date_key = dd.date_key
where dd.full_date >= current_date - $1::int
group by dd.full_date
order by dd.full_date
`,
}

func (r *queries) DailyMetric(ctx context.Context, metric string, days int) ([]RowTrend, error) {
	sql, ok := dailyMetricSQL[metric]
	if !ok {
		return nil, perr.InvalidArgf("invalid metric %q", metric)
	}
	rows, err := r.q.Query(ctx, sql, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowTrend
	for rows.Next() {
		var rr RowTrend
		if err := rows.Scan(&rr.Date, &rr.Value); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
