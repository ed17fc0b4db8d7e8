package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KNset/blog-bot/core/logger"
	"log/slog"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// AddPost inserts a new post and returns its store-assigned id. The creation
// timestamp is assigned by the store.
func (s *Store) AddPost(ctx context.Context, title, description, link, content string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (title, description, link, content) VALUES (?, ?, ?, ?)`,
		title, description, link, content)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCPosts, slog.LevelError, "post.add",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("add post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add post: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCPosts, slog.LevelInfo, "post.add",
		slog.String("status", "ok"),
		slog.Int64("post_id", id),
	)
	return id, nil
}

// ListPosts returns every post, newest first. An empty store yields an empty
// slice, not an error. The id tiebreak keeps same-second inserts ordered.
func (s *Store) ListPosts(ctx context.Context) ([]Post, error) {
	posts := []Post{}
	err := s.db.SelectContext(ctx, &posts,
		`SELECT id, title, description, link, content, created_at
		   FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCPosts, slog.LevelError, "post.list",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost fetches one post by id, returning ErrNotFound when no row matches.
func (s *Store) GetPost(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := s.db.GetContext(ctx, &p,
		`SELECT id, title, description, link, content, created_at
		   FROM posts WHERE id = ?`, id)
	if err != nil {
		if isNoRows(err) {
			return Post{}, ErrNotFound
		}
		logger.LogEvent(ctx, logger.SVCPosts, slog.LevelError, "post.get",
			slog.String("status", "fail"),
			slog.Int64("post_id", id),
			slog.String("err", err.Error()),
		)
		return Post{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

// UpdatePost overwrites the four mutable fields of a post. ErrNotFound when
// the id does not exist; the creation timestamp is left untouched.
func (s *Store) UpdatePost(ctx context.Context, id int64, title, description, link, content string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, description = ?, link = ?, content = ? WHERE id = ?`,
		title, description, link, content, id)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCPosts, slog.LevelError, "post.update",
			slog.String("status", "fail"),
			slog.Int64("post_id", id),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("update post %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	logger.LogEvent(ctx, logger.SVCPosts, slog.LevelInfo, "post.update",
		slog.String("status", "ok"),
		slog.Int64("post_id", id),
	)
	return nil
}

// DeletePost removes a post. A second delete of the same id reports
// ErrNotFound rather than a fault.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCPosts, slog.LevelError, "post.delete",
			slog.String("status", "fail"),
			slog.Int64("post_id", id),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	logger.LogEvent(ctx, logger.SVCPosts, slog.LevelInfo, "post.delete",
		slog.String("status", "ok"),
		slog.Int64("post_id", id),
	)
	return nil
}

// CountPosts returns the number of stored posts.
func (s *Store) CountPosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
