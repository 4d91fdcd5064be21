package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a required row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a caller supplies malformed input,
// such as a blank name or an end time before the start time.
var ErrInvalidInput = errors.New("invalid input")

// Entry is a single tracked activity. A nil EndTime means the entry is
// still running ("open"); at most one entry is open at any time.
type Entry struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Open reports whether the entry is still running.
func (e *Entry) Open() bool {
	return e.EndTime == nil
}

// DurationMinutes returns the entry's elapsed whole minutes, measured
// against now when the entry is still open. Partial minutes are floored.
func (e *Entry) DurationMinutes(now time.Time) int64 {
	end := now
	if e.EndTime != nil {
		end = *e.EndTime
	}
	d := end.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// UpdateEntryParams carries a partial update; nil fields are left untouched.
type UpdateEntryParams struct {
	Name      *string
	StartTime *time.Time
	EndTime   *time.Time
}

// Empty reports whether the update would change no fields.
func (p UpdateEntryParams) Empty() bool {
	return p.Name == nil && p.StartTime == nil && p.EndTime == nil
}

// NameCount is one row of the frequent-names ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// NameDuration is one row of a day or week aggregation: total tracked
// whole minutes for a name within the window.
type NameDuration struct {
	Name     string `json:"name"`
	Duration int64  `json:"duration"`
}

// EntryRepository defines the storage contract for entries.
type EntryRepository interface {
	// Start closes any open entry at e.StartTime and inserts e, both within
	// a single transaction. On success e.ID, e.CreatedAt and e.UpdatedAt are
	// populated from the inserted row.
	Start(ctx context.Context, e *Entry) error
	// Current returns the open entry with the greatest start time, or
	// ErrNotFound when nothing is running.
	Current(ctx context.Context) (*Entry, error)
	// Get returns the entry with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Entry, error)
	// End sets the entry's end time and returns the updated row.
	End(ctx context.Context, id int64, endTime time.Time) (*Entry, error)
	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, id int64, params UpdateEntryParams) (*Entry, error)
	// Delete removes the entry. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// List returns entries ordered by start time descending.
	List(ctx context.Context, limit, offset int) ([]*Entry, error)
	// ListByRange returns entries whose start time falls in [from, to]
	// inclusive, ordered by start time descending.
	ListByRange(ctx context.Context, from, to time.Time) ([]*Entry, error)
	// FrequentNames ranks entry names by occurrence count, descending.
	FrequentNames(ctx context.Context, limit int) ([]NameCount, error)
	// AggregateByName sums whole tracked minutes per name over entries
	// starting in [from, to] inclusive, ordered by duration descending.
	// Open entries are measured against the database's current time.
	AggregateByName(ctx context.Context, from, to time.Time) ([]NameDuration, error)
}

// TrackingService is the application-facing surface over entries.
type TrackingService interface {
	Start(ctx context.Context, name string, startTime, endTime *time.Time) (*Entry, error)
	Current(ctx context.Context) (*Entry, error)
	End(ctx context.Context, id int64, endTime *time.Time) (*Entry, error)
	Update(ctx context.Context, id int64, params UpdateEntryParams) (*Entry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p PaginationParams) ([]*Entry, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*Entry, error)
	FrequentNames(ctx context.Context, limit int) ([]NameCount, error)
	AggregateDay(ctx context.Context, date time.Time) ([]NameDuration, error)
	AggregateWeek(ctx context.Context, date time.Time) ([]NameDuration, error)
	Log(ctx context.Context, p PaginationParams) ([]DayGroup, error)
}
