package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"llm-chatbot/pkg/llm"

	"go.uber.org/zap"
)

const sqlPrompt = "You're an expert SQL assistant. Generate a clean SQLite SQL query for table `%s` " +
	"based on the user's question. Do NOT include markdown or formatting.\n\n" +
	"User: %s\nSQL:"

var fenceRe = regexp.MustCompile("```(?:sql)?")

// SQLGenerator turns a question into a query over one table. The output is
// untrusted and is only checked by QueryExecutor.
type SQLGenerator struct {
	generator llm.Generator
	logger    *zap.Logger
}

func NewSQLGenerator(generator llm.Generator, logger *zap.Logger) *SQLGenerator {
	return &SQLGenerator{
		generator: generator,
		logger:    logger,
	}
}

func (g *SQLGenerator) Generate(ctx context.Context, text, table string) (string, error) {
	raw, err := g.generator.Generate(ctx, fmt.Sprintf(sqlPrompt, table, text))
	if err != nil {
		return "", &ModelError{Stage: "generate_sql", Err: err}
	}

	query := cleanSQL(raw)
	g.logger.Debug("Generated SQL", zap.String("table", table), zap.String("sql", query))
	return query, nil
}

func cleanSQL(raw string) string {
	return strings.Trim(fenceRe.ReplaceAllString(raw, ""), "` \n\t\r")
}
