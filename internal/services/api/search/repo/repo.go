// Package repo provides postgres access for message search
package repo

import (
	"context"

	"medlens/internal/modkit/repokit"
)

// Filter narrows the message search, zero values mean unconstrained
type Filter struct {
	Query       string
	ChannelName string
	StartDate   string
	EndDate     string
	HasImages   *bool
	MinViews    *int
	Limit       int
}

// Repo defines the repository contract for message search
type Repo interface {
	Search(ctx context.Context, f Filter) ([]RowMessage, error)
	Popular(ctx context.Context, days, limit int) ([]RowMessage, error)
	ByID(ctx context.Context, id int64, channelName string) ([]RowMessage, error)
	Detection(ctx context.Context, id int64, channelName string) (RowDetection, bool, error)
}

// RowMessage is one message row joined to its channel and date
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

// RowDetection is the image detection attached to a message, if any
type RowDetection struct {
	Category        string
	DetectedObjects []string
	AvgConfidence   float64
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

const messageCols = `
fm.message_id, fm.message_text, dc.channel_name,
coalesce(fm.view_count, 0), coalesce(fm.forward_count, 0),
fm.has_image_flag, fm.message_length, coalesce(fm.engagement_score, 0)
`

func (r *queries) scanMessages(rows repokit.Rows) ([]RowMessage, error) {
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

func (r *queries) Search(ctx context.Context, f Filter) ([]RowMessage, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	const sql = `
select ` + messageCols + `, fm.loaded_at::text
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where fm.message_text ilike '%' || $1 || '%'
and ($2 = '' or dc.channel_name = $2)
and ($3 = '' or dd.full_date >= $3::date)
and ($4 = '' or dd.full_date <= $4::date)
and ($5::bool is null or fm.has_image_flag = $5)
and ($6::int is null or fm.view_count >= $6)
order by fm.view_count desc
limit $7
`
	rows, err := r.q.Query(ctx, sql,
		f.Query, f.ChannelName, f.StartDate, f.EndDate, f.HasImages, f.MinViews, f.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *queries) Popular(ctx context.Context, days, limit int) ([]RowMessage, error) {
	const sql = `
select ` + messageCols + `, dd.full_date::text
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
	return r.scanMessages(rows)
}

func (r *queries) ByID(ctx context.Context, id int64, channelName string) ([]RowMessage, error) {
	const sql = `
select ` + messageCols + `, dd.full_date::text
from marts.fct_messages fm
join marts.dim_channels dc on fm.channel_key = dc.channel_key
join marts.dim_dates dd on fm.date_key = dd.date_key
where fm.message_id = $1
and ($2 = '' or dc.channel_name = $2)
`
	rows, err := r.q.Query(ctx, sql, id, channelName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *queries) Detection(ctx context.Context, id int64, channelName string) (RowDetection, bool, error) {
	const sql = `
select fid.image_category, fid.detected_objects, coalesce(fid.avg_confidence, 0)
from marts.fct_image_detections fid
join marts.dim_channels dc on fid.channel_key = dc.channel_key
where fid.message_id = $1 and dc.channel_name = $2
`
	rows, err := r.q.Query(ctx, sql, id, channelName)
	if err != nil {
		return RowDetection{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return RowDetection{}, false, rows.Err()
	}
	var rr RowDetection
	if err := rows.Scan(&rr.Category, &rr.DetectedObjects, &rr.AvgConfidence); err != nil {
		return RowDetection{}, false, err
	}
	return rr, true, rows.Err()
}
