package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"llm-chatbot/internal/repository"

	"go.uber.org/zap"
)

const (
	KeywordGoodbye  = "👋 Exiting. Goodbye!"
	keywordFallback = "I'm not sure how to help with that. Try asking about order status, pricing, support, or FAQs."
)

var (
	upperOrderIDRe = regexp.MustCompile(`\bORD\d+\b`)
	customerRe     = regexp.MustCompile(`(for|by)\s+([a-zA-Z]+)`)

	supportDepartments = []string{"Sales", "Tech Support", "Billing", "Returns", "Warranty", "Accounts"}
	departmentWords    = []string{"sales", "returns", "billing", "warranty", "accounts"}
)

// KeywordBot answers from fixed keyword rules without any language model.
type KeywordBot struct {
	catalog *repository.CatalogRepository
	faqs    *repository.FAQRepository
	logger  *zap.Logger
}

func NewKeywordBot(catalog *repository.CatalogRepository, faqs *repository.FAQRepository, logger *zap.Logger) *KeywordBot {
	return &KeywordBot{
		catalog: catalog,
		faqs:    faqs,
		logger:  logger,
	}
}

// Reply returns the answer to text and whether the conversation is over.
func (b *KeywordBot) Reply(ctx context.Context, text string) (string, bool) {
	lower := strings.ToLower(text)

	var (
		reply  string
		err    error
		prefix = "❌ Error"
	)
	switch {
	case strings.Contains(lower, "exit"):
		return KeywordGoodbye, true
	case strings.Contains(lower, "price"):
		reply, err = b.productPrice(ctx, lower)
	case strings.Contains(lower, "orders for"), strings.Contains(lower, "orders by"):
		reply, err = b.customerOrders(ctx, text)
		prefix = "❌ Order history error"
	case strings.Contains(lower, "order") && strings.Contains(strings.ToUpper(text), "ORD"):
		reply, err = b.orderStatus(ctx, text)
	case strings.Contains(lower, "tech support") && strings.Contains(lower, "contact"),
		containsAny(lower, departmentWords):
		reply, err = b.supportContact(ctx, lower)
		prefix = "❌ SQL execution failed"
	case containsAny(lower, []string{"how", "help", "faq"}):
		reply, err = b.faqAnswer(ctx, lower)
		prefix = "❌ FAQ error"
	default:
		reply = keywordFallback
	}

	if err != nil {
		b.logger.Warn("Keyword lookup failed", zap.String("text", text), zap.Error(err))
		return fmt.Sprintf("%s: %v", prefix, err), false
	}
	return reply, false
}

func (b *KeywordBot) productPrice(ctx context.Context, lower string) (string, error) {
	products, err := b.catalog.ListProducts(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range products {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			// whole prices print without ".0"
			return fmt.Sprintf("💰 The price of %s is ₹%s", p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64)), nil
		}
	}
	return "⚠️ No data found.", nil
}

func (b *KeywordBot) orderStatus(ctx context.Context, text string) (string, error) {
	id := upperOrderIDRe.FindString(strings.ToUpper(text))
	if id == "" {
		return "⚠️ No valid order ID found!", nil
	}

	order, err := b.catalog.GetOrder(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "⚠️ No matching order found!", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("📦 Order %s for %s is currently: %s", order.OrderID, order.CustomerName, order.Status), nil
}

func (b *KeywordBot) customerOrders(ctx context.Context, text string) (string, error) {
	m := customerRe.FindStringSubmatch(text)
	if m == nil {
		return "⚠️ No customer name detected.", nil
	}

	orders, err := b.catalog.OrdersByCustomer(ctx, m[2])
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "⚠️ No orders found for that customer.", nil
	}

	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("📦 Order %s - %s", o.OrderID, o.Status))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *KeywordBot) supportContact(ctx context.Context, lower string) (string, error) {
	for _, dept := range supportDepartments {
		if !strings.Contains(lower, strings.ToLower(dept)) {
			continue
		}
		contact, err := b.catalog.GetSupportContact(ctx, dept)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("📞 %s Team\nPhone: %s\nEmail: %s", dept, contact.Phone, contact.Email), nil
	}
	return "❓ No matching support department found.", nil
}

func (b *KeywordBot) faqAnswer(ctx context.Context, lower string) (string, error) {
	entries, err := b.faqs.List(ctx)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if containsAny(lower, strings.Fields(strings.ToLower(entry.Question))) {
			return fmt.Sprintf("❓ %s\n💡 %s", entry.Question, entry.Answer), nil
		}
	}
	return "❓ Sorry, I couldn't find a related FAQ.", nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
