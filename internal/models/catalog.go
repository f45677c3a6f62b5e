package models

type Product struct {
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Features  string  `db:"features"`
	Price     float64 `db:"price"`
}

type Order struct {
	OrderID      string `db:"order_id"`
	CustomerName string `db:"customer_name"`
	Status       string `db:"status"`
}

type SupportContact struct {
	Department string `db:"department"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
}
