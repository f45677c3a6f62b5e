package repository

import (
	"context"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/database"

	"go.uber.org/zap"
)

type FAQRepository struct {
	db     *database.DB
	logger *zap.Logger
}

func NewFAQRepository(db *database.DB, logger *zap.Logger) *FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every FAQ entry in id order. Embeddings are left empty.
func (r *FAQRepository) List(ctx context.Context) ([]*models.FAQEntry, error) {
	query := r.db.Builder().
		Select("id", "question", "keywords", "answer").
		From(TableFAQ).
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

	var entries []*models.FAQEntry
	for rows.Next() {
		var entry models.FAQEntry
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Keywords, &entry.Answer); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
