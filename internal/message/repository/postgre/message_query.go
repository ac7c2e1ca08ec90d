package postgre

import (
	"fmt"
	"strings"

	repo "ai-brain/internal/message/repository"
)

// buildCountQuery builds WHERE clause + args for counting messages
// (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListMessagesOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	conditions = append(conditions, fmt.Sprintf("context_id = $%d", idx))
	args = append(args, opt.ContextID)
	idx++

	if opt.Channel != "" {
		conditions = append(conditions, fmt.Sprintf("channel_id = $%d", idx))
		args = append(args, opt.Channel)
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
// Ordering is ascending timestamp; slack_ts breaks ties for stability.
func (r *implRepository) buildListQuery(opt repo.ListMessagesOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	conditions = append(conditions, fmt.Sprintf("context_id = $%d", idx))
	args = append(args, opt.ContextID)
	idx++

	if opt.Channel != "" {
		conditions = append(conditions, fmt.Sprintf("channel_id = $%d", idx))
		args = append(args, opt.Channel)
		idx++
	}

	parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	parts = append(parts, "ORDER BY timestamp_ms ASC, slack_ts ASC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
