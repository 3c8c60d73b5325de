package models

import "time"

// RecordSnapshot is a saved copy of the record document kept for history.
type RecordSnapshot struct {
	ID        string    `db:"id" json:"id"`
	UserName  string    `db:"user_name" json:"user_name"`
	TermCount int       `db:"term_count" json:"term_count"`
	Document  []byte    `db:"document" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
