package store

import (
	"database/sql"
	"time"
)

// Event represents one dispatched pointer action.
type Event struct {
	ID        string
	Action    string
	X         float64
	Y         float64
	CreatedAt time.Time
}

// EventRepository provides access to the pointer action event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert appends an event to the log.
func (r *EventRepository) Insert(e *Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, action, x, y, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Action, e.X, e.Y, e.CreatedAt,
	)
	return err
}

// Recent retrieves up to limit events, newest first.
func (r *EventRepository) Recent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, action, x, y, created_at FROM events
		 ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Action, &e.X, &e.Y, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// DeleteBefore removes events older than the cutoff and returns how many
// rows were deleted.
func (r *EventRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
