package videos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shortsreel/backend/internal/models"
)

// ErrNotFound is returned when the referenced video does not exist.
var ErrNotFound = errors.New("video not found")

// Repository handles video persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a video repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert persists a new video. The database assigns id and created_at;
// both are written back into v.
func (r *Repository) Insert(ctx context.Context, v *models.Video) error {
	const q = `INSERT INTO videos (title, description, media_id, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, v.Title, v.Description, v.MediaID, v.Tags).
		Scan(&v.ID, &v.CreatedAt)
}

// Replace overwrites title, description, media_id and tags of the video
// with the given id. The id and created_at never change. Returns
// ErrNotFound if no such video exists; on success v carries the stored
// state.
func (r *Repository) Replace(ctx context.Context, id uuid.UUID, v *models.Video) error {
	const q = `UPDATE videos SET title = $1, description = $2, media_id = $3, tags = $4
		WHERE id = $5
		RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, q, v.Title, v.Description, v.MediaID, v.Tags, id).
		Scan(&v.ID, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// List returns videos newest-first, capped at limit.
func (r *Repository) List(ctx context.Context, limit int) ([]models.Video, error) {
	const q = `SELECT id, title, description, media_id, tags, created_at
		FROM videos ORDER BY created_at DESC LIMIT $1`
	return r.queryVideos(ctx, q, limit)
}

// Count returns the total number of videos.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n)
	return n, err
}

// Sample returns up to n videos drawn uniformly at random without
// replacement from the whole collection. ORDER BY random() rescans the
// table, which is fine at catalog scale (hundreds of rows, not
// millions).
func (r *Repository) Sample(ctx context.Context, n int) ([]models.Video, error) {
	const q = `SELECT id, title, description, media_id, tags, created_at
		FROM videos ORDER BY random() LIMIT $1`
	return r.queryVideos(ctx, q, n)
}

func (r *Repository) queryVideos(ctx context.Context, q string, args ...interface{}) ([]models.Video, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.MediaID, &v.Tags, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
