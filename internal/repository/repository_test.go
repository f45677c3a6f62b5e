package repository

import (
	"context"
	"testing"
	"time"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/config"
	"llm-chatbot/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), &config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, NewSeeder(db, zap.NewNop()).Reset(context.Background()))
	return db
}

func TestSeederResetIsRepeatable(t *testing.T) {
	db := newSeededDB(t)
	seeder := NewSeeder(db, zap.NewNop())

	require.NoError(t, seeder.Reset(context.Background()))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM product_info`).Scan(&count))
	assert.Equal(t, len(SeedProducts), count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM order_status`).Scan(&count))
	assert.Equal(t, len(SeedOrders), count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM support_contacts`).Scan(&count))
	assert.Equal(t, len(SeedSupportContacts), count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM faq`).Scan(&count))
	assert.Equal(t, len(SeedFAQs), count)

	require.NoError(t, seeder.EnsureChatLog(context.Background()))
}

func TestFAQRepositoryList(t *testing.T) {
	repo := NewFAQRepository(newSeededDB(t), zap.NewNop())

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, len(SeedFAQs))

	assert.Equal(t, "How to track my order?", entries[0].Question)
	assert.Equal(t, "track,order,shipping", entries[0].Keywords)
	assert.Equal(t, "How to track my order? track,order,shipping", entries[0].IndexText())
	assert.Empty(t, entries[0].Embedding)
}

func TestChatLogRepositoryRoundTrip(t *testing.T) {
	repo := NewChatLogRepository(newSeededDB(t), zap.NewNop())
	ctx := context.Background()
	ts := time.Date(2025, 3, 1, 10, 30, 0, 123456000, time.Local)

	require.NoError(t, repo.Create(ctx, &models.ChatTurn{SessionID: "a", Timestamp: ts, UserQuery: "q1", BotResponse: "r1"}))
	require.NoError(t, repo.Create(ctx, &models.ChatTurn{SessionID: "b", Timestamp: ts, UserQuery: "other", BotResponse: "other"}))
	require.NoError(t, repo.Create(ctx, &models.ChatTurn{SessionID: "a", Timestamp: ts, UserQuery: "q2", BotResponse: "r2"}))

	turns, err := repo.ListBySession(ctx, "a")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "q1", turns[0].UserQuery)
	assert.Equal(t, "r2", turns[1].BotResponse)
	assert.True(t, ts.Equal(turns[0].Timestamp))

	none, err := repo.ListBySession(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChatLogRepositoryKeepsStoredTimestamp(t *testing.T) {
	db := newSeededDB(t)
	repo := NewChatLogRepository(db, zap.NewNop())
	ctx := context.Background()

	stored := []string{
		"2025-03-01T10:30:00",
		"2025-03-01T10:30:00.5",
		"2025-03-01T10:30:00+05:30",
		"yesterday",
	}
	for _, ts := range stored {
		_, err := db.ExecContext(ctx,
			"INSERT INTO chat_log (session_id, timestamp, user_query, bot_response) VALUES (?, ?, ?, ?)",
			"py", ts, "q", "r")
		require.NoError(t, err)
	}

	turns, err := repo.ListBySession(ctx, "py")
	require.NoError(t, err)
	require.Len(t, turns, len(stored))
	for i, ts := range stored {
		assert.Equal(t, ts, turns[i].StoredTimestamp)
	}

	assert.True(t, time.Date(2025, 3, 1, 10, 30, 0, 0, time.Local).Equal(turns[0].Timestamp))
	assert.True(t, time.Date(2025, 3, 1, 10, 30, 0, 500000000, time.Local).Equal(turns[1].Timestamp))
	assert.True(t, time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC).Equal(turns[2].Timestamp))
	assert.True(t, turns[3].Timestamp.IsZero())
}

func TestCatalogRepository(t *testing.T) {
	repo := NewCatalogRepository(newSeededDB(t), zap.NewNop())
	ctx := context.Background()

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(SeedProducts))
	assert.Equal(t, "Galaxy S23", products[0].Name)
	assert.Equal(t, 79999.0, products[0].Price)

	order, err := repo.GetOrder(ctx, "ORD5678")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Kapoor", order.CustomerName)

	_, err = repo.GetOrder(ctx, "ORD0000")
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := repo.OrdersByCustomer(ctx, "Vik")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	contact, err := repo.GetSupportContact(ctx, "Billing")
	require.NoError(t, err)
	assert.Equal(t, "billing@example.com", contact.Email)

	_, err = repo.GetSupportContact(ctx, "Marketing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueryRepository(t *testing.T) {
	repo := NewQueryRepository(newSeededDB(t), zap.NewNop())
	ctx := context.Background()

	rs, err := repo.Run(ctx, `SELECT name, price FROM product_info WHERE product_id = 'PROD002'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, rs.Columns)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, "iPhone 14", rs.Rows[0][0])

	all, err := repo.ScanTable(ctx, TableProducts)
	require.NoError(t, err)
	assert.Equal(t, []string{"product_id", "name", "features", "price"}, all.Columns)
	assert.Len(t, all.Rows, len(SeedProducts))

	orders, err := repo.OrdersByID(ctx, "ORD1234")
	require.NoError(t, err)
	require.Len(t, orders.Rows, 1)
	assert.Equal(t, []any{"ORD1234", "John Doe", "Shipped"}, orders.Rows[0])

	_, err = repo.Run(ctx, `SELECT missing_column FROM product_info`)
	assert.Error(t, err)
}
