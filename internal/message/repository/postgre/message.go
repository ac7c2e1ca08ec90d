package postgre

import (
	"context"
	"fmt"

	repo "ai-brain/internal/message/repository"
	"ai-brain/internal/model"
)

// CreateMessage inserts a message row. The UNIQUE constraint on
// (context_id, channel_id, slack_ts) plus ON CONFLICT DO NOTHING makes
// the dedup check-and-insert atomic under concurrent retries.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (bool, error) {
	const query = `
		INSERT INTO slack_messages
			(id, context_id, channel_id, channel_name, user_id, user_name, text, slack_ts, timestamp_ms, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (context_id, channel_id, slack_ts) DO NOTHING`

	m := opt.Message
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.ContextID, m.Channel.ID, m.Channel.Name,
		m.User.ID, m.User.Name, m.Text, m.SlackTS, m.TimestampMs, m.ReceivedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return false, repo.ErrFailedToInsert
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("CreateMessage"), err)
		return false, repo.ErrFailedToInsert
	}
	return affected > 0, nil
}

// ListMessages returns a page of messages ordered by ascending
// timestamp, plus the filtered total.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM slack_messages WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, context_id, channel_id, channel_name, user_id, user_name, text, slack_ts, timestamp_ms, received_at
		 FROM slack_messages %s`,
		mods,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(
			&m.ID, &m.ContextID, &m.Channel.ID, &m.Channel.Name,
			&m.User.ID, &m.User.Name, &m.Text, &m.SlackTS, &m.TimestampMs, &m.ReceivedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, 0, repo.ErrFailedToList
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return messages, total, nil
}
