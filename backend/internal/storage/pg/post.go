package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

var errPostNotFound = internal_errors.NotFound("no post with such id exists.")

const postColumns = "id, author_id, thread_id, title, content, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.Id, &p.Author, &p.Thread, &p.Title, &p.Content, &p.CreatedAt)
	return p, err
}

func (s *Storage) SavePost(post domain.Post) (domain.PostId, error) {
	var id domain.PostId
	err := s.db.QueryRow("INSERT INTO posts(author_id, thread_id, title, content) VALUES($1, $2, $3, $4) RETURNING id",
		post.Author, post.Thread, post.Title, post.Content).Scan(&id)
	if err != nil {
		if shared_pg.IsForeignKeyViolation(err) {
			return -1, internal_errors.NotFound("no thread with this id exists.")
		}
		return -1, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

func (s *Storage) Post(id domain.PostId) (domain.Post, error) {
	p, err := scanPost(s.db.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, errPostNotFound
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return p, nil
}

// Posts lists every post, or only the posts of thread when it is not nil.
func (s *Storage) Posts(thread *domain.ThreadId) ([]domain.Post, error) {
	rows, err := s.db.Query("SELECT "+postColumns+" FROM posts WHERE $1::text IS NULL OR thread_id = $1 ORDER BY created_at, id", thread)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

// UpdatePost applies non-nil fields and returns the updated post.
func (s *Storage) UpdatePost(id domain.PostId, data domain.PostUpdateData) (domain.Post, error) {
	p, err := scanPost(s.db.QueryRow(`
		UPDATE posts
		SET title = COALESCE($2, title), content = COALESCE($3, content)
		WHERE id = $1
		RETURNING `+postColumns,
		id, data.Title, data.Content,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, errPostNotFound
		}
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return p, nil
}

func (s *Storage) DeletePost(id domain.PostId) error {
	result, err := s.db.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for post deletion: %w", err)
	}
	if deleted == 0 {
		return errPostNotFound
	}
	return nil
}
