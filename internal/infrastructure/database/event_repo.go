package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository on a pgx pool.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, name, description, start_time, host_type, host_id, host_name,
	image_url, created_by, guild_id, announcement_channel_id, announcement_message_id,
	notified, created_at`

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e            entities.Event
		imageURL     pgtype.Text
		annChannelID pgtype.Text
		annMessageID pgtype.Text
		startTime    pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
	)
	err := row.Scan(&e.ID, &e.Name, &e.Description, &startTime, &e.HostType, &e.HostID,
		&e.HostName, &imageURL, &e.CreatedBy, &e.GuildID, &annChannelID, &annMessageID,
		&e.Notified, &createdAt)
	if err != nil {
		return entities.Event{}, err
	}
	e.StartTime = startTime.Time.UTC()
	e.CreatedAt = createdAt.Time.UTC()
	e.ImageURL = imageURL.String
	e.AnnouncementChannelID = annChannelID.String
	e.AnnouncementMessageID = annMessageID.String
	return e, nil
}

// textOrNull maps an empty string to SQL NULL.
func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (name, description, start_time, host_type, host_id, host_name,
			image_url, created_by, guild_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		event.Name, event.Description,
		pgtype.Timestamptz{Time: event.StartTime, Valid: true},
		event.HostType, event.HostID, event.HostName,
		textOrNull(event.ImageURL), event.CreatedBy, event.GuildID,
	)
	var createdAt pgtype.Timestamptz
	if err := row.Scan(&event.ID, &createdAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.CreatedAt = createdAt.Time.UTC()
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64, guildID string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 AND guild_id = $2`,
		id, guildID,
	)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, guildID string, upcomingOnly bool, now time.Time, limit int) ([]entities.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE guild_id = $1`
	args := []any{guildID}
	if upcomingOnly {
		query += ` AND start_time >= $2`
		args = append(args, pgtype.Timestamptz{Time: now, Valid: true})
	}
	query += fmt.Sprintf(` ORDER BY start_time ASC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET name = $2, description = $3, start_time = $4, image_url = $5
		WHERE id = $1`,
		event.ID, event.Name, event.Description,
		pgtype.Timestamptz{Time: event.StartTime, Valid: true},
		textOrNull(event.ImageURL),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) SetAnnouncement(ctx context.Context, id int64, channelID, messageID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE events
		SET announcement_channel_id = $2, announcement_message_id = $3
		WHERE id = $1`,
		id, channelID, messageID,
	)
	if err != nil {
		return fmt.Errorf("set announcement: %w", err)
	}
	return nil
}

func (r *EventRepository) FindDueUnnotified(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE notified = FALSE AND start_time > $1 AND start_time <= $2`,
		pgtype.Timestamptz{Time: from, Valid: true},
		pgtype.Timestamptz{Time: to, Valid: true},
	)
	if err != nil {
		return nil, fmt.Errorf("find due events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find due events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) MarkNotified(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `UPDATE events SET notified = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
