package service

import (
	"context"
	"testing"

	"llm-chatbot/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newKeywordBot(t *testing.T) (*KeywordBot, func() error) {
	t.Helper()
	db := newSeededDB(t)
	logger := zap.NewNop()
	return NewKeywordBot(repository.NewCatalogRepository(db, logger), repository.NewFAQRepository(db, logger), logger), db.Close
}

func TestKeywordBotReply(t *testing.T) {
	bot, _ := newKeywordBot(t)

	tests := []struct {
		text string
		want string
	}{
		// whole prices print without a ".0" fraction
		{text: "What's the price of Galaxy S23?", want: "💰 The price of Galaxy S23 is ₹79999"},
		{text: "price of a nokia", want: "⚠️ No data found."},
		{text: "status of order ord1234", want: "📦 Order ORD1234 for John Doe is currently: Shipped"},
		{text: "order ORD0000", want: "⚠️ No matching order found!"},
		{text: "where is my order?", want: "⚠️ No valid order ID found!"},
		{text: "show orders for Arjun", want: "📦 Order ORD5678 - In Transit"},
		{text: "orders by Vik", want: "📦 Order ORD2024 - Delivered\n📦 Order ORD2026 - In Transit"},
		{text: "orders for Zed", want: "⚠️ No orders found for that customer."},
		{text: "orders for 42", want: "⚠️ No customer name detected."},
		{text: "tech support contact please", want: "📞 Tech Support Team\nPhone: 987-654-3210\nEmail: support@example.com"},
		{text: "billing question", want: "📞 Billing Team\nPhone: 111-222-3333\nEmail: billing@example.com"},
		{text: "how to track", want: "❓ How to track my order?\n💡 Track your order under \"My Orders\" in your profile."},
		{text: "need help", want: "❓ Sorry, I couldn't find a related FAQ."},
		{text: "what's the weather", want: keywordFallback},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, done := bot.Reply(context.Background(), tt.text)
			assert.False(t, done)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordBotExit(t *testing.T) {
	bot, _ := newKeywordBot(t)

	got, done := bot.Reply(context.Background(), "please EXIT now")
	assert.True(t, done)
	assert.Equal(t, KeywordGoodbye, got)
}

func TestKeywordBotStoreErrors(t *testing.T) {
	bot, closeDB := newKeywordBot(t)
	_ = closeDB()

	tests := []struct {
		text string
		want string
	}{
		{text: "price of iPhone 14", want: "❌ Error: sql: database is closed"},
		{text: "order ORD1234", want: "❌ Error: sql: database is closed"},
		{text: "orders for John", want: "❌ Order history error: sql: database is closed"},
		{text: "sales contact", want: "❌ SQL execution failed: sql: database is closed"},
		{text: "how to reset", want: "❌ FAQ error: sql: database is closed"},
	}

	for _, tt := range tests {
		got, done := bot.Reply(context.Background(), tt.text)
		assert.False(t, done)
		assert.Equal(t, tt.want, got, tt.text)
	}
}
