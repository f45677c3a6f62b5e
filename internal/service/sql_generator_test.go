package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type promptRecorder struct {
	prompt string
	reply  string
}

func (r *promptRecorder) Generate(_ context.Context, prompt string) (string, error) {
	r.prompt = prompt
	return r.reply, nil
}

func TestCleanSQL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "SELECT * FROM faq", want: "SELECT * FROM faq"},
		{raw: "```sql\nSELECT name FROM product_info;\n```", want: "SELECT name FROM product_info;"},
		{raw: "```\nSELECT 1\n```\n", want: "SELECT 1"},
		{raw: " \t`SELECT 1`\r\n", want: "SELECT 1"},
		{raw: "```sql```", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSQL(tt.raw), tt.raw)
	}
}

func TestSQLGeneratorPrompt(t *testing.T) {
	rec := &promptRecorder{reply: "```sql\nSELECT * FROM order_status\n```"}

	query, err := NewSQLGenerator(rec, zap.NewNop()).Generate(context.Background(), "where is ORD1234?", "order_status")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM order_status", query)
	assert.Contains(t, rec.prompt, "table `order_status`")
	assert.True(t, strings.HasSuffix(rec.prompt, "User: where is ORD1234?\nSQL:"))
}

func TestSQLGeneratorModelError(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("timeout")}

	_, err := NewSQLGenerator(gen, zap.NewNop()).Generate(context.Background(), "q", "faq")
	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, "generate_sql", modelErr.Stage)
}
