package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

const createSongsTable = `
CREATE TABLE IF NOT EXISTS songs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	singer TEXT NOT NULL,
	year INTEGER NOT NULL,
	owner_id TEXT NOT NULL REFERENCES accounts(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const createSongsOwnerIndex = `
CREATE INDEX IF NOT EXISTS idx_songs_owner ON songs(owner_id);
`

type SongRepository struct {
	db *sql.DB
}

func NewSongRepository(db *sql.DB) repository.SongRepository {
	return &SongRepository{db: db}
}

func (r *SongRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSongsTable); err != nil {
		return fmt.Errorf("create songs table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createSongsOwnerIndex); err != nil {
		return fmt.Errorf("create songs owner index: %w", err)
	}
	return nil
}

func (r *SongRepository) Create(ctx context.Context, song *domain.Song) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO songs (id, title, singer, year, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		song.ID,
		song.Title,
		song.Singer,
		song.Year,
		song.OwnerID,
		song.CreatedAt,
		song.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

func (r *SongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, singer, year, owner_id, created_at, updated_at
FROM songs
WHERE id = ?`,
		id,
	)
	var song domain.Song
	if err := scanSong(row.Scan, &song); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan song: %w", err)
	}
	return &song, nil
}

func (r *SongRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Song, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, singer, year, owner_id, created_at, updated_at
FROM songs
WHERE owner_id = ?
ORDER BY rowid`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := make([]domain.Song, 0)
	for rows.Next() {
		var song domain.Song
		if err := scanSong(rows.Scan, &song); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}

func (r *SongRepository) Update(ctx context.Context, id, title, singer string, year int, updatedAt time.Time) (*domain.Song, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE songs
SET title = ?, singer = ?, year = ?, updated_at = ?
WHERE id = ?`,
		title,
		singer,
		year,
		updatedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update song rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SongRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete song rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanSong(scan func(dest ...any) error, song *domain.Song) error {
	return scan(
		&song.ID,
		&song.Title,
		&song.Singer,
		&song.Year,
		&song.OwnerID,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
}
