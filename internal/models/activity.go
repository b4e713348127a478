package models

import "time"

// Activity is an append-only audit entry written after each successful mutation.
type Activity struct {
	ID        int64     `db:"id" json:"id"`
	UserID    *int64    `db:"user_id" json:"userId"`
	Action    string    `db:"action" json:"action"`
	Details   string    `db:"details" json:"details"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// ActivityFilter bounds the activity feed. Limit 0 returns every entry.
type ActivityFilter struct {
	Limit int
}
