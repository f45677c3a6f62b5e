package service

import (
	"context"
	"fmt"
	"strings"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/llm"

	"go.uber.org/zap"
)

const intentPrompt = "Classify the user's intent as one of the following: " +
	"product_info, order_status, faq, greeting, goodbye, unknown. Only return the label.\n" +
	"User: %s\nIntent:"

// IntentClassifier asks the language model for one label of the closed
// intent set.
type IntentClassifier struct {
	generator llm.Generator
	logger    *zap.Logger
}

func NewIntentClassifier(generator llm.Generator, logger *zap.Logger) *IntentClassifier {
	return &IntentClassifier{
		generator: generator,
		logger:    logger,
	}
}

func (c *IntentClassifier) Classify(ctx context.Context, text string) (models.Intent, error) {
	raw, err := c.generator.Generate(ctx, fmt.Sprintf(intentPrompt, text))
	if err != nil {
		return models.IntentUnknown, &ModelError{Stage: "classify", Err: err}
	}

	label := normalizeLabel(raw)
	intent := models.ParseIntent(label)
	if intent == models.IntentUnknown && label != string(models.IntentUnknown) {
		c.logger.Debug("Model returned a label outside the intent set", zap.String("label", raw))
	}

	return intent, nil
}

func normalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.Trim(label, "\"'` \t\r\n")
	label = strings.TrimSuffix(label, ".")
	return strings.TrimSpace(label)
}
