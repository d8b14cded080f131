// Package tracker owns the in-memory day record collection and runs the
// mutation pipeline: validate, mutate, persist, recompute, notify. All
// derived stats are recomputed from the full collection after every
// write; nothing is patched incrementally.
package tracker

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
	"github.com/julianstephens/daystreak/internal/storage"
	"github.com/julianstephens/daystreak/internal/streak"
)

// ErrFutureDate rejects mutations for days after today.
var ErrFutureDate = errors.New("cannot record a future date")

// Tracker is not safe for concurrent use; all mutation and
// recomputation is expected to happen on one logical thread of control.
type Tracker struct {
	store    storage.Provider
	notifier Notifier
	records  map[string]models.DayRecord
	stats    models.StreakStats

	now func() time.Time // test hook
}

// New loads the persisted collection and computes the initial stats.
// Malformed persisted data degrades to an empty collection with an
// EventLoadFailed notification rather than an error.
func New(store storage.Provider, notifier Notifier) (*Tracker, error) {
	t := &Tracker{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}

	records, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrMalformedData) {
			return nil, fmt.Errorf("failed to load records: %w", err)
		}
		log.Warn().Err(err).Msg("persisted data unreadable, starting with an empty collection")
		records = make(map[string]models.DayRecord)
		t.notify(Event{Kind: EventLoadFailed, Err: err})
	}
	if records == nil {
		records = make(map[string]models.DayRecord)
	}

	t.records = records
	t.recompute()
	return t, nil
}

// Status returns the stored status for the given date, or StatusUnset
// when no record exists. Unset is a normal result, not a failure.
func (t *Tracker) Status(date time.Time) models.Status {
	rec, ok := t.records[dates.Key(date)]
	if !ok {
		return models.StatusUnset
	}
	return rec.Status
}

// Stats returns the stats derived from the current collection.
func (t *Tracker) Stats() models.StreakStats {
	return t.stats
}

// Records returns all records in chronological order.
func (t *Tracker) Records() []models.DayRecord {
	out := make([]models.DayRecord, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Len returns the number of stored records.
func (t *Tracker) Len() int {
	return len(t.records)
}

// SetStatus upserts the record for the given date. Future dates are
// rejected with ErrFutureDate and leave the collection unchanged.
func (t *Tracker) SetStatus(date time.Time, status models.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	if err := t.checkNotFuture(date); err != nil {
		return err
	}

	day := dates.Key(date)
	now := t.now().UTC()
	rec, ok := t.records[day]
	if ok {
		rec.Status = status
		rec.UpdatedAt = now
	} else {
		rec = models.DayRecord{
			ID:        uuid.NewString(),
			Day:       day,
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	t.records[day] = rec
	if err := t.store.SaveRecord(rec); err != nil {
		return fmt.Errorf("failed to persist record for %s: %w", day, err)
	}
	t.recompute()
	t.notify(Event{Kind: EventDayUpdated, Day: day})
	return nil
}

// ClearStatus deletes the record for the given date, leaving the day
// unset. Clearing a day that has no record is a no-op.
func (t *Tracker) ClearStatus(date time.Time) error {
	if err := t.checkNotFuture(date); err != nil {
		return err
	}

	day := dates.Key(date)
	if _, ok := t.records[day]; !ok {
		return nil
	}

	delete(t.records, day)
	if err := t.store.DeleteRecord(day); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", day, err)
	}
	t.recompute()
	t.notify(Event{Kind: EventDayUpdated, Day: day})
	return nil
}

// ResetAll empties the collection and clears persisted storage.
// Confirmation is the caller's concern.
func (t *Tracker) ResetAll() error {
	t.records = make(map[string]models.DayRecord)
	if err := t.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	t.recompute()
	t.notify(Event{Kind: EventDataReset})
	return nil
}

func (t *Tracker) checkNotFuture(date time.Time) error {
	today := dates.Normalize(t.now())
	if dates.After(date, today) {
		day := dates.Key(date)
		t.notify(Event{Kind: EventFutureDateRejected, Day: day})
		return fmt.Errorf("%w: %s", ErrFutureDate, day)
	}
	return nil
}

func (t *Tracker) recompute() {
	t.stats = streak.Calculate(t.records, t.now())
}

func (t *Tracker) notify(e Event) {
	if t.notifier != nil {
		t.notifier.Notify(e)
	}
}
