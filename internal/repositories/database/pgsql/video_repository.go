package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
)

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepository {
	return &PgxVideoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepository = (*PgxVideoRepository)(nil)

// scanVideo reads one videos row. owner_id is nullable (the owning user
// may have been deleted), so it goes through sql.NullString.
func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	var ownerID sql.NullString
	err := row.Scan(
		&v.VideoID,
		&ownerID,
		&v.VideoFileURL,
		&v.ThumbnailURL,
		&v.Title,
		&v.Description,
		&v.Duration,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.OwnerID = ownerID.String
	return &v, nil
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `
        SELECT video_id, owner_id, video_file_url, thumbnail_url, title, description, duration, views, is_published, created_at, updated_at
        FROM videos
        WHERE video_id = $1;
    `
	video, err := scanVideo(r.Pool.QueryRow(ctx, query, videoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}
	return video, nil
}

// scanWatchHistoryEntry reads one joined history row. Both the video's
// owner_id and every owner profile column are nullable: the former when
// the owner was deleted, the latter from the left join.
func scanWatchHistoryEntry(row pgx.Row) (domain.WatchHistoryEntry, error) {
	var entry domain.WatchHistoryEntry
	var ownerID, ownerFullName, ownerUsername, ownerAvatar sql.NullString
	err := row.Scan(
		&entry.VideoID,
		&ownerID,
		&entry.VideoFileURL,
		&entry.ThumbnailURL,
		&entry.Title,
		&entry.Description,
		&entry.Duration,
		&entry.Views,
		&entry.IsPublished,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&ownerFullName,
		&ownerUsername,
		&ownerAvatar,
	)
	if err != nil {
		return domain.WatchHistoryEntry{}, err
	}
	entry.OwnerID = ownerID.String
	if ownerUsername.Valid {
		entry.Owner = &domain.VideoOwner{
			FullName:  ownerFullName.String,
			Username:  ownerUsername.String,
			AvatarURL: ownerAvatar.String,
		}
	}
	return entry, nil
}

// FindWatchHistory resolves the ordered id list in one pass: the inner join
// drops ids whose video no longer exists, the left join leaves the owner
// NULL when the owning user is gone, and ORDER BY position keeps the stored
// viewing order untouched.
func (r *PgxVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	query := `
        SELECT
            v.video_id, v.owner_id, v.video_file_url, v.thumbnail_url, v.title, v.description,
            v.duration, v.views, v.is_published, v.created_at, v.updated_at,
            o.full_name, o.username, o.avatar_url
        FROM watch_history wh
        JOIN videos v ON v.video_id = wh.video_id
        LEFT JOIN users o ON o.user_id = v.owner_id
        WHERE wh.user_id = $1
        ORDER BY wh.position ASC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	entries := []domain.WatchHistoryEntry{}
	for rows.Next() {
		entry, err := scanWatchHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxVideoRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	query := `
        INSERT INTO watch_history (user_id, video_id, position)
        SELECT $1, $2, COALESCE(MAX(position), 0) + 1
        FROM watch_history
        WHERE user_id = $1;
    `
	if _, err := r.Pool.Exec(ctx, query, userID, videoID); err != nil {
		return fmt.Errorf("failed to append watch history: %w", err)
	}
	return nil
}
