package models

import "strings"

type FAQEntry struct {
	ID        int64     `db:"id"`
	Question  string    `db:"question"`
	Keywords  string    `db:"keywords"`
	Answer    string    `db:"answer"`
	Embedding []float32 `db:"-"` // computed at startup, never stored
}

// IndexText is the text embedded for semantic lookup.
func (f *FAQEntry) IndexText() string {
	return strings.TrimSpace(f.Question + " " + f.Keywords)
}
