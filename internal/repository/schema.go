package repository

import "llm-chatbot/pkg/database"

const (
	TableProducts        = "product_info"
	TableOrders          = "order_status"
	TableSupportContacts = "support_contacts"
	TableFAQ             = "faq"
	TableChatLog         = "chat_log"
)

// Tables in creation order.
var referenceTables = []string{TableProducts, TableOrders, TableSupportContacts, TableFAQ}

func schema(driver string) map[string]string {
	realType, serial := "REAL", "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == database.DriverPostgres {
		realType, serial = "DOUBLE PRECISION", "SERIAL PRIMARY KEY"
	}

	return map[string]string{
		TableProducts: `CREATE TABLE IF NOT EXISTS product_info (
			product_id TEXT PRIMARY KEY,
			name TEXT,
			features TEXT,
			price ` + realType + `
		)`,
		TableOrders: `CREATE TABLE IF NOT EXISTS order_status (
			order_id TEXT PRIMARY KEY,
			customer_name TEXT,
			status TEXT
		)`,
		TableSupportContacts: `CREATE TABLE IF NOT EXISTS support_contacts (
			department TEXT PRIMARY KEY,
			phone TEXT,
			email TEXT
		)`,
		TableFAQ: `CREATE TABLE IF NOT EXISTS faq (
			id ` + serial + `,
			question TEXT,
			keywords TEXT,
			answer TEXT
		)`,
		TableChatLog: `CREATE TABLE IF NOT EXISTS chat_log (
			id ` + serial + `,
			session_id TEXT,
			timestamp TEXT,
			user_query TEXT,
			bot_response TEXT
		)`,
	}
}
