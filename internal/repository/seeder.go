package repository

import (
	"context"
	"database/sql"
	"fmt"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// Seeder owns the schema and the demo reference data.
type Seeder struct {
	db     *database.DB
	logger *zap.Logger
}

func NewSeeder(db *database.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// EnsureChatLog creates the chat_log table when it is missing.
func (s *Seeder) EnsureChatLog(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema(s.db.Driver)[TableChatLog]); err != nil {
		return fmt.Errorf("failed to create chat_log table: %w", err)
	}
	return nil
}

// Reset drops every table, recreates the schema and inserts the demo rows.
func (s *Seeder) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ddl := schema(s.db.Driver)
	for _, table := range append(referenceTables, TableChatLog) {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, ddl[table]); err != nil {
			return fmt.Errorf("failed to create %s: %w", table, err)
		}
	}
	s.logger.Info("Tables created")

	sb := s.db.Builder()

	products := sb.Insert(TableProducts).Columns("product_id", "name", "features", "price")
	for _, p := range SeedProducts {
		products = products.Values(p.ProductID, p.Name, p.Features, p.Price)
	}
	orders := sb.Insert(TableOrders).Columns("order_id", "customer_name", "status")
	for _, o := range SeedOrders {
		orders = orders.Values(o.OrderID, o.CustomerName, o.Status)
	}
	contacts := sb.Insert(TableSupportContacts).Columns("department", "phone", "email")
	for _, c := range SeedSupportContacts {
		contacts = contacts.Values(c.Department, c.Phone, c.Email)
	}
	faqs := sb.Insert(TableFAQ).Columns("question", "keywords", "answer")
	for _, f := range SeedFAQs {
		faqs = faqs.Values(f.Question, f.Keywords, f.Answer)
	}

	for _, insert := range []squirrel.InsertBuilder{products, orders, contacts, faqs} {
		if err := execInsert(ctx, tx, insert); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	s.logger.Info("Sample data inserted",
		zap.Int("products", len(SeedProducts)),
		zap.Int("orders", len(SeedOrders)),
		zap.Int("support_contacts", len(SeedSupportContacts)),
		zap.Int("faqs", len(SeedFAQs)),
	)
	return nil
}

func execInsert(ctx context.Context, tx *sql.Tx, insert squirrel.InsertBuilder) error {
	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert seed rows: %w", err)
	}
	return nil
}

var SeedProducts = []models.Product{
	{ProductID: "PROD001", Name: "Galaxy S23", Features: "6.1-inch, 8GB RAM, 128GB Storage", Price: 79999},
	{ProductID: "PROD002", Name: "iPhone 14", Features: "6.1-inch, A15 Bionic, 128GB Storage", Price: 89999},
	{ProductID: "PROD003", Name: "MacBook Pro", Features: "M2 Chip, 16GB RAM, 512GB SSD", Price: 199999},
	{ProductID: "PROD004", Name: "Dell XPS 13", Features: "13.3-inch, Intel i7, 16GB RAM, 512GB SSD", Price: 124999},
	{ProductID: "PROD005", Name: "OnePlus 11", Features: "Snapdragon 8 Gen 2, 16GB RAM, 256GB Storage", Price: 59999},
	{ProductID: "PROD006", Name: "iPad Air", Features: "10.9-inch, M1 Chip, 64GB Storage", Price: 61999},
	{ProductID: "PROD007", Name: "Pixel 8", Features: "Tensor G3, 8GB RAM, 128GB Storage", Price: 69999},
	{ProductID: "PROD008", Name: "ASUS ROG Phone 7", Features: "Gaming, 16GB RAM, 512GB Storage", Price: 85999},
	{ProductID: "PROD009", Name: "Lenovo Yoga 9i", Features: "14-inch, Intel i7, 16GB RAM", Price: 109999},
	{ProductID: "PROD010", Name: "HP Spectre x360", Features: "13.5-inch, OLED, 16GB RAM, 1TB SSD", Price: 139999},
}

var SeedOrders = []models.Order{
	{OrderID: "ORD1234", CustomerName: "John Doe", Status: "Shipped"},
	{OrderID: "ORD5678", CustomerName: "Arjun Kapoor", Status: "In Transit"},
	{OrderID: "ORD4321", CustomerName: "Sneha Reddy", Status: "Delivered"},
	{OrderID: "ORD8765", CustomerName: "Raj Patel", Status: "Cancelled"},
	{OrderID: "ORD9999", CustomerName: "Aisha Khan", Status: "Processing"},
	{OrderID: "ORD2024", CustomerName: "Vikram Menon", Status: "Delivered"},
	{OrderID: "ORD2025", CustomerName: "Neha Sharma", Status: "Shipped"},
	{OrderID: "ORD2026", CustomerName: "Vikas Gupta", Status: "In Transit"},
	{OrderID: "ORD2027", CustomerName: "Priya Das", Status: "Pending"},
	{OrderID: "ORD2028", CustomerName: "Anil Kumar", Status: "Returned"},
}

var SeedSupportContacts = []models.SupportContact{
	{Department: "Sales", Phone: "123-456-7890", Email: "sales@example.com"},
	{Department: "Tech Support", Phone: "987-654-3210", Email: "support@example.com"},
	{Department: "Billing", Phone: "111-222-3333", Email: "billing@example.com"},
	{Department: "Returns", Phone: "444-555-6666", Email: "returns@example.com"},
	{Department: "Warranty", Phone: "777-888-9999", Email: "warranty@example.com"},
	{Department: "Accounts", Phone: "999-111-2222", Email: "accounts@example.com"},
}

var SeedFAQs = []models.FAQEntry{
	{Question: "How to track my order?", Keywords: "track,order,shipping", Answer: `Track your order under "My Orders" in your profile.`},
	{Question: "How to contact support?", Keywords: "contact,support", Answer: "Email support@example.com or call 987-654-3210."},
	{Question: "What is the return policy?", Keywords: "return,refund", Answer: "Return items within 10 days of delivery."},
	{Question: "How long is the warranty?", Keywords: "warranty,duration", Answer: "1-year warranty unless mentioned otherwise."},
	{Question: "Do you offer EMI?", Keywords: "emi,installments,payment", Answer: "Yes, EMI options are available at checkout."},
	{Question: "Where is my invoice?", Keywords: "invoice,bill", Answer: "Invoices are available in the order details section."},
	{Question: "Can I cancel my order?", Keywords: "cancel,cancellation", Answer: "Orders can be canceled before they are shipped."},
	{Question: "How to change delivery address?", Keywords: "change,address,delivery", Answer: "Edit the address in your profile before dispatch."},
	{Question: "How to reset my password?", Keywords: "reset,password,forgot", Answer: `Use the "Forgot Password" link on login page.`},
	{Question: "Can I get a GST invoice?", Keywords: "gst,invoice,bill", Answer: "Yes, enable GST billing in your account settings."},
}
