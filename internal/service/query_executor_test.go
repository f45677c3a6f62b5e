package service

import (
	"context"
	"testing"

	"llm-chatbot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExecutor(t *testing.T) (*QueryExecutor, *repository.QueryRepository) {
	t.Helper()
	db := newSeededDB(t)
	queries := repository.NewQueryRepository(db, zap.NewNop())
	return NewQueryExecutor(queries, zap.NewNop()), queries
}

func TestQueryExecutorRunsSelect(t *testing.T) {
	executor, _ := newExecutor(t)

	result := executor.Execute(context.Background(), "SELECT name, price FROM product_info WHERE product_id = 'PROD002';",
		repository.TableProducts, "iphone price")

	require.Equal(t, ResultRows, result.Kind)
	assert.False(t, result.Fallback)
	assert.Equal(t, []string{"name", "price"}, result.Columns)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []any{"iPhone 14", 89999.0}, result.Rows[0].Values)
}

func TestQueryExecutorProductFallback(t *testing.T) {
	executor, queries := newExecutor(t)

	result := executor.Execute(context.Background(), "DROP TABLE product_info", repository.TableProducts, "galaxy")

	require.Equal(t, ResultRows, result.Kind)
	assert.True(t, result.Fallback)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "PROD001", result.Rows[0].Values[0])
	assert.Equal(t, "Galaxy S23", result.Rows[0].Values[1])

	// the rejected statement never ran
	rs, err := queries.ScanTable(context.Background(), repository.TableProducts)
	require.NoError(t, err)
	assert.Len(t, rs.Rows, len(repository.SeedProducts))
}

func TestQueryExecutorProductFallbackUnicodeWords(t *testing.T) {
	executor, _ := newExecutor(t)

	// "naïve" is one word; split into ASCII runs its "na" would match Snapdragon
	result := executor.Execute(context.Background(), "not sql", repository.TableProducts, "naïve")
	require.Equal(t, ResultRows, result.Kind)
	assert.Empty(t, result.Rows)

	result = executor.Execute(context.Background(), "not sql", repository.TableProducts, "покажи galaxy")
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Galaxy S23", result.Rows[0].Values[1])
}

func TestPromptTokens(t *testing.T) {
	assert.Equal(t, []string{"где", "мой", "galaxy_s23", "42"}, promptTokens("Где мой Galaxy_S23? 42"))
	assert.Equal(t, []string{"naïve", "café"}, promptTokens("Naïve, CAFÉ!"))
	assert.Empty(t, promptTokens("?!"))
}

func TestQueryExecutorOrderFallback(t *testing.T) {
	executor, _ := newExecutor(t)

	result := executor.Execute(context.Background(), "SELEC * FROM order_status", repository.TableOrders, "Where is my order ord1234?")

	require.Equal(t, ResultRows, result.Kind)
	assert.True(t, result.Fallback)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []any{"ORD1234", "John Doe", "Shipped"}, result.Rows[0].Values)
	assert.Equal(t, "order_id | customer_name | status\n"+
		"---------------------------------\n"+
		"ORD1234 | John Doe | Shipped", FormatResult(result))
}

func TestQueryExecutorOrderFallbackWithoutID(t *testing.T) {
	executor, _ := newExecutor(t)

	result := executor.Execute(context.Background(), "not sql", repository.TableOrders, "where is my order?")

	require.Equal(t, ResultRows, result.Kind)
	assert.Empty(t, result.Rows)
	assert.Equal(t, "Sorry, I couldn't find any results.", FormatResult(result))
}

func TestQueryExecutorNoFallbackTable(t *testing.T) {
	executor, _ := newExecutor(t)

	result := executor.Execute(context.Background(), "SELECT * FROM faqs_missing", repository.TableFAQ, "return policy")

	require.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "SQL execution failed: no such table: faqs_missing", result.Err)
}

func TestQueryExecutorFallbackFailure(t *testing.T) {
	db := newSeededDB(t)
	executor := NewQueryExecutor(repository.NewQueryRepository(db, zap.NewNop()), zap.NewNop())
	require.NoError(t, db.Close())

	result := executor.Execute(context.Background(), "SELECT * FROM product_info", repository.TableProducts, "galaxy")

	require.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "Fallback search failed: sql: database is closed", result.Err)
}

func TestGuardStatement(t *testing.T) {
	accepted := map[string]string{
		"SELECT * FROM faq":                          "SELECT * FROM faq",
		"  select name from product_info ;  \n":      "select name from product_info",
		"WITH t AS (SELECT 1 AS n) SELECT n FROM t;": "WITH t AS (SELECT 1 AS n) SELECT n FROM t",
	}
	for query, want := range accepted {
		got, err := guardStatement(query)
		require.NoError(t, err, query)
		assert.Equal(t, want, got)
	}

	rejected := []string{
		"",
		" ; ",
		"DELETE FROM order_status",
		"SELECT 1; DROP TABLE faq",
		"selection",
		"PRAGMA table_info(faq)",
	}
	for _, query := range rejected {
		_, err := guardStatement(query)
		assert.ErrorIs(t, err, ErrQueryExecution, query)
	}
}
