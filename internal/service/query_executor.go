package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"llm-chatbot/internal/repository"

	"go.uber.org/zap"
)

type ResultKind int

const (
	ResultRows ResultKind = iota
	ResultError
)

// Row is one result row. Values follow Columns.
type Row struct {
	Columns []string
	Values  []any
}

// QueryResult is either a (possibly empty) list of rows or a single error
// message meant for the user.
type QueryResult struct {
	Kind     ResultKind
	Columns  []string
	Rows     []Row
	Err      string
	Fallback bool
}

func rowsResult(rs *repository.ResultSet, fallback bool) *QueryResult {
	result := &QueryResult{Kind: ResultRows, Columns: rs.Columns, Fallback: fallback}
	for _, values := range rs.Rows {
		result.Rows = append(result.Rows, Row{Columns: rs.Columns, Values: values})
	}
	return result
}

func errorResult(format string, args ...any) *QueryResult {
	return &QueryResult{Kind: ResultError, Err: fmt.Sprintf(format, args...)}
}

var (
	wordTokenRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)
	orderIDRe   = regexp.MustCompile(`(?i)\bORD\d+\b`)
	leadingKwRe = regexp.MustCompile(`(?i)^(select|with)\b`)
)

// QueryExecutor runs generated SQL and answers from a keyword search over
// the relevant table when the statement cannot be run.
type QueryExecutor struct {
	queries *repository.QueryRepository
	logger  *zap.Logger
}

func NewQueryExecutor(queries *repository.QueryRepository, logger *zap.Logger) *QueryExecutor {
	return &QueryExecutor{
		queries: queries,
		logger:  logger,
	}
}

func (e *QueryExecutor) Execute(ctx context.Context, query, table, prompt string) *QueryResult {
	rs, err := e.run(ctx, query)
	if err == nil {
		return rowsResult(rs, false)
	}

	e.logger.Warn("Generated SQL failed, using keyword fallback",
		zap.String("table", table),
		zap.String("sql", query),
		zap.Error(err),
	)

	switch table {
	case repository.TableProducts:
		return e.fallbackResult(e.searchProducts(ctx, table, prompt))
	case repository.TableOrders:
		return e.fallbackResult(e.searchOrders(ctx, prompt))
	default:
		return errorResult("SQL execution failed: %v", errorCause(err))
	}
}

func (e *QueryExecutor) run(ctx context.Context, query string) (*repository.ResultSet, error) {
	stmt, err := guardStatement(query)
	if err != nil {
		return nil, err
	}

	rs, err := e.queries.Run(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryExecution, err)
	}
	return rs, nil
}

func (e *QueryExecutor) fallbackResult(rs *repository.ResultSet, err error) *QueryResult {
	if err != nil {
		e.logger.Warn("Fallback search failed", zap.Error(err))
		return errorResult("Fallback search failed: %v", err)
	}
	return rowsResult(rs, true)
}

func (e *QueryExecutor) searchProducts(ctx context.Context, table, prompt string) (*repository.ResultSet, error) {
	tokens := promptTokens(prompt)

	all, err := e.queries.ScanTable(ctx, table)
	if err != nil {
		return nil, err
	}

	matched := &repository.ResultSet{Columns: all.Columns}
	for _, values := range all.Rows {
		text := strings.ToLower(rowText(values))
		for _, token := range tokens {
			if strings.Contains(text, token) {
				matched.Rows = append(matched.Rows, values)
				break
			}
		}
	}
	return matched, nil
}

func (e *QueryExecutor) searchOrders(ctx context.Context, prompt string) (*repository.ResultSet, error) {
	id := orderIDRe.FindString(prompt)
	if id == "" {
		return &repository.ResultSet{}, nil
	}
	return e.queries.OrdersByID(ctx, strings.ToUpper(id))
}

// guardStatement accepts exactly one SELECT or WITH statement. A trailing
// semicolon is dropped.
func guardStatement(query string) (string, error) {
	stmt := strings.TrimSpace(query)
	stmt = strings.TrimSpace(strings.TrimRight(stmt, "; \t\r\n"))

	if stmt == "" {
		return "", fmt.Errorf("%w: empty statement", ErrQueryExecution)
	}
	if strings.Contains(stmt, ";") {
		return "", fmt.Errorf("%w: multiple statements are not allowed", ErrQueryExecution)
	}
	if !leadingKwRe.MatchString(stmt) {
		return "", fmt.Errorf("%w: only SELECT statements are allowed", ErrQueryExecution)
	}
	return stmt, nil
}

// errorCause drops the ErrQueryExecution marker so the driver's own message
// reaches the user.
func errorCause(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			if inner != ErrQueryExecution {
				return inner
			}
		}
	}
	return err
}

// promptTokens returns the lower-cased Unicode words of prompt.
func promptTokens(prompt string) []string {
	return wordTokenRe.FindAllString(strings.ToLower(prompt), -1)
}

func rowText(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, " ")
}
