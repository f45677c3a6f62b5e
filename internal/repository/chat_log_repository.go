package repository

import (
	"context"
	"time"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/database"

	"go.uber.org/zap"
)

// TimestampLayout is the ISO-8601 form stored in chat_log.timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// readLayouts accept what other writers of chat_log produce: any fraction
// length or none, with or without an offset.
var readLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
}

type ChatLogRepository struct {
	db     *database.DB
	logger *zap.Logger
}

func NewChatLogRepository(db *database.DB, logger *zap.Logger) *ChatLogRepository {
	return &ChatLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatLogRepository) Create(ctx context.Context, turn *models.ChatTurn) error {
	query := r.db.Builder().
		Insert(TableChatLog).
		Columns("session_id", "timestamp", "user_query", "bot_response").
		Values(turn.SessionID, turn.Timestamp.Format(TimestampLayout), turn.UserQuery, turn.BotResponse)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sql, args...)
	return err
}

// ListBySession returns the session's turns in insertion order.
func (r *ChatLogRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.ChatTurn, error) {
	query := r.db.Builder().
		Select("id", "session_id", "timestamp", "user_query", "bot_response").
		From(TableChatLog).
		Where("session_id = ?", sessionID).
		OrderBy("id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []*models.ChatTurn
	for rows.Next() {
		var turn models.ChatTurn
		var ts string
		if err := rows.Scan(&turn.ID, &turn.SessionID, &ts, &turn.UserQuery, &turn.BotResponse); err != nil {
			return nil, err
		}
		turn.StoredTimestamp = ts
		parsed, ok := parseTimestamp(ts)
		if !ok {
			r.logger.Warn("Unparseable chat log timestamp", zap.String("timestamp", ts), zap.Int64("id", turn.ID))
		}
		turn.Timestamp = parsed
		turns = append(turns, &turn)
	}

	return turns, rows.Err()
}

func parseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range readLayouts {
		if parsed, err := time.ParseInLocation(layout, ts, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
