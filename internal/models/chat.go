package models

import "time"

type ChatTurn struct {
	ID          int64     `db:"id" json:"-"`
	SessionID   string    `db:"session_id" json:"session_id"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	UserQuery   string    `db:"user_query" json:"user_query"`
	BotResponse string    `db:"bot_response" json:"bot_response"`

	// StoredTimestamp is the timestamp text exactly as read from chat_log.
	StoredTimestamp string `db:"-" json:"-"`
}

type Intent string

const (
	IntentProductInfo Intent = "product_info"
	IntentOrderStatus Intent = "order_status"
	IntentFAQ         Intent = "faq"
	IntentGreeting    Intent = "greeting"
	IntentGoodbye     Intent = "goodbye"
	IntentUnknown     Intent = "unknown"
)

// ParseIntent maps a label onto the closed intent set. Anything outside the
// set is IntentUnknown.
func ParseIntent(label string) Intent {
	switch intent := Intent(label); intent {
	case IntentProductInfo, IntentOrderStatus, IntentFAQ, IntentGreeting, IntentGoodbye:
		return intent
	default:
		return IntentUnknown
	}
}

// Table returns the reference table answering the intent, or "" when the
// intent is not answered from the database.
func (i Intent) Table() string {
	switch i {
	case IntentProductInfo, IntentOrderStatus, IntentFAQ:
		return string(i)
	default:
		return ""
	}
}
