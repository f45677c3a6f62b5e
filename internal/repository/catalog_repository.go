package repository

import (
	"context"
	"database/sql"
	"errors"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("not found")

// CatalogRepository reads the products, orders and support contacts tables.
type CatalogRepository struct {
	db     *database.DB
	logger *zap.Logger
}

func NewCatalogRepository(db *database.DB, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := r.db.Builder().
		Select("product_id", "name", "features", "price").
		From(TableProducts)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Features, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

// GetOrder looks an order up by its exact id.
func (r *CatalogRepository) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := r.db.Builder().
		Select("order_id", "customer_name", "status").
		From(TableOrders).
		Where(squirrel.Eq{"order_id": orderID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var o models.Order
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&o.OrderID, &o.CustomerName, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// OrdersByCustomer returns orders whose customer name contains name.
func (r *CatalogRepository) OrdersByCustomer(ctx context.Context, name string) ([]*models.Order, error) {
	query := r.db.Builder().
		Select("order_id", "customer_name", "status").
		From(TableOrders).
		Where(squirrel.Like{"customer_name": "%" + name + "%"})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.OrderID, &o.CustomerName, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *CatalogRepository) GetSupportContact(ctx context.Context, department string) (*models.SupportContact, error) {
	query := r.db.Builder().
		Select("department", "phone", "email").
		From(TableSupportContacts).
		Where(squirrel.Eq{"department": department})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.SupportContact
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&c.Department, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
