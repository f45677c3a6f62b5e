package repository

import (
	"context"
	"database/sql"
	"fmt"

	"llm-chatbot/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// ResultSet is an untyped query result in driver column order.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// QueryRepository runs ad-hoc statements whose shape is only known at run time.
type QueryRepository struct {
	db     *database.DB
	logger *zap.Logger
}

func NewQueryRepository(db *database.DB, logger *zap.Logger) *QueryRepository {
	return &QueryRepository{
		db:     db,
		logger: logger,
	}
}

// Run executes a raw statement. The statement is not inspected here.
func (r *QueryRepository) Run(ctx context.Context, query string, args ...any) (*ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResultSet(rows)
}

// ScanTable returns every row of table in its natural order.
func (r *QueryRepository) ScanTable(ctx context.Context, table string) (*ResultSet, error) {
	sql, args, err := r.db.Builder().Select("*").From(table).ToSql()
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, sql, args...)
}

// OrdersByID returns order_status rows whose id equals orderID ignoring case.
func (r *QueryRepository) OrdersByID(ctx context.Context, orderID string) (*ResultSet, error) {
	query := r.db.Builder().
		Select("*").
		From(TableOrders).
		Where(squirrel.Expr("UPPER(order_id) = ?", orderID))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, sql, args...)
}

func scanResultSet(rows *sql.Rows) (*ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	rs := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}
