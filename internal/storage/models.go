package storage

import "time"

// Post is one published blog entry.
type Post struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Link        string    `db:"link"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
}

// ChildBot is a provisioned tenant bot: its token, owning admin and the
// path of its isolated database file.
type ChildBot struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	AdminID   int64     `db:"admin_id"`
	DBPath    string    `db:"db_path"`
	CreatedAt time.Time `db:"created_at"`
}
