package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"llm-chatbot/internal/models"
	"llm-chatbot/internal/repository"

	"go.uber.org/zap"
)

const (
	GreetingReply = "Hello! How can I assist you today?"
	ClarifyReply  = "I'm not sure how to help with that. Could you please rephrase?"
	GoodbyeReply  = "Goodbye! Have a great day."
	ErrorReply    = "⚠️ Internal error occurred."
)

type Route string

const (
	RouteGreeting Route = "greeting"
	RouteFAQ      Route = "faq"
	RouteClarify  Route = "clarify"
	RouteGoodbye  Route = "goodbye"
	RouteSQL      Route = "sql"
	RouteError    Route = "error"
)

var greetingRe = regexp.MustCompile(`(?i)\b(hi|hello|hey)\b`)

type ChatReply struct {
	Text     string
	Route    Route
	Intent   models.Intent
	SQL      string
	Fallback bool
}

// ChatService runs the answer pipeline for one query at a time and records
// every turn.
type ChatService struct {
	faq        *FAQIndex
	classifier *IntentClassifier
	generator  *SQLGenerator
	executor   *QueryExecutor
	chatLogs   *repository.ChatLogRepository
	sessions   SessionStore
	logger     *zap.Logger
	now        func() time.Time
}

func NewChatService(
	faq *FAQIndex,
	classifier *IntentClassifier,
	generator *SQLGenerator,
	executor *QueryExecutor,
	chatLogs *repository.ChatLogRepository,
	sessions SessionStore,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		faq:        faq,
		classifier: classifier,
		generator:  generator,
		executor:   executor,
		chatLogs:   chatLogs,
		sessions:   sessions,
		logger:     logger,
		now:        time.Now,
	}
}

// Chat answers prompt. On a stage failure the reply carries the generic
// error text and the wrapped error is returned alongside it.
func (s *ChatService) Chat(ctx context.Context, sessionID, prompt string) (*ChatReply, error) {
	reply, err := s.answer(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to answer query",
			zap.String("session_id", sessionID),
			zap.String("prompt", prompt),
			zap.Error(err),
		)
		reply = &ChatReply{Text: ErrorReply, Route: RouteError, Intent: reply.Intent}
	}

	s.record(ctx, sessionID, prompt, reply.Text)
	return reply, err
}

func (s *ChatService) answer(ctx context.Context, prompt string) (*ChatReply, error) {
	if greetingRe.MatchString(prompt) {
		return &ChatReply{Text: GreetingReply, Route: RouteGreeting}, nil
	}

	answer, ok, err := s.faq.Lookup(ctx, prompt)
	if err != nil {
		return &ChatReply{}, fmt.Errorf("faq lookup: %w", err)
	}
	if ok {
		return &ChatReply{Text: answer, Route: RouteFAQ}, nil
	}

	intent, err := s.classifier.Classify(ctx, prompt)
	if err != nil {
		return &ChatReply{}, err
	}

	switch intent {
	case models.IntentGreeting:
		return &ChatReply{Text: GreetingReply, Route: RouteGreeting, Intent: intent}, nil
	case models.IntentGoodbye:
		return &ChatReply{Text: GoodbyeReply, Route: RouteGoodbye, Intent: intent}, nil
	}

	table := intent.Table()
	if table == "" {
		return &ChatReply{Text: ClarifyReply, Route: RouteClarify, Intent: intent}, nil
	}

	query, err := s.generator.Generate(ctx, prompt, table)
	if err != nil {
		return &ChatReply{Intent: intent}, err
	}

	result := s.executor.Execute(ctx, query, table, prompt)
	return &ChatReply{
		Text:     FormatResult(result),
		Route:    RouteSQL,
		Intent:   intent,
		SQL:      query,
		Fallback: result.Fallback,
	}, nil
}

func (s *ChatService) record(ctx context.Context, sessionID, prompt, response string) {
	turn := models.ChatTurn{
		SessionID:   sessionID,
		Timestamp:   s.now(),
		UserQuery:   sanitizeUTF8(prompt),
		BotResponse: sanitizeUTF8(response),
	}

	if err := s.sessions.Append(ctx, sessionID, turn); err != nil {
		s.logger.Error("Failed to append session turn", zap.String("session_id", sessionID), zap.Error(err))
	}
	if err := s.chatLogs.Create(ctx, &turn); err != nil {
		s.logger.Error("Failed to write chat log", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// ChatLog returns the session's chat log as plain text, or "" when the
// session has no turns.
func (s *ChatService) ChatLog(ctx context.Context, sessionID string) (string, error) {
	turns, err := s.chatLogs.ListBySession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to read chat log: %w", err)
	}

	entries := make([]string, 0, len(turns))
	for _, turn := range turns {
		ts := turn.StoredTimestamp
		if ts == "" {
			ts = turn.Timestamp.Format(repository.TimestampLayout)
		}
		entries = append(entries, fmt.Sprintf("[%s] USER: %s\nBOT: %s\n", ts, turn.UserQuery, turn.BotResponse))
	}
	return strings.Join(entries, "\n"), nil
}

func (s *ChatService) History(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	return s.sessions.History(ctx, sessionID)
}
