package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
)

var _ output.InterestRepository = (*InterestRepository)(nil)

// InterestRepository implements output.InterestRepository on a pgx pool.
// The UNIQUE (event_id, user_id) constraint makes the interest toggle safe
// against concurrent double-toggles without application-level locking.
type InterestRepository struct {
	pool *pgxpool.Pool
}

func NewInterestRepository(pool *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{pool: pool}
}

const pgForeignKeyViolation = "23503"

func (r *InterestRepository) Add(ctx context.Context, reg *entities.InterestRegistration) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO event_interests (event_id, user_id, guild_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING`,
		reg.EventID, reg.UserID, reg.GuildID,
	)
	if err != nil {
		// The event row disappeared, e.g. a toggle racing a cancellation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("add interest: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InterestRepository) Remove(ctx context.Context, eventID int64, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM event_interests WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("remove interest: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InterestRepository) UserIDs(ctx context.Context, eventID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM event_interests WHERE event_id = $1 ORDER BY created_at`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list interested users: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		out = append(out, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interested users: %w", err)
	}
	return out, nil
}

func (r *InterestRepository) Count(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_interests WHERE event_id = $1`,
		eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count interests: %w", err)
	}
	return count, nil
}

func (r *InterestRepository) DeleteByEventID(ctx context.Context, eventID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM event_interests WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete interests: %w", err)
	}
	return nil
}
