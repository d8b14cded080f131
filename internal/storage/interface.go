package storage

import (
	"errors"

	"github.com/julianstephens/daystreak/internal/models"
)

// ErrMalformedData marks a persisted collection that could not be
// decoded. Callers are expected to fall back to an empty collection and
// keep the session alive.
var ErrMalformedData = errors.New("malformed day record data")

type Provider interface {
	// Lifecycle
	Init() error
	// Load returns the full record collection keyed by day. A missing
	// store yields an empty collection; undecodable data yields an empty
	// collection and an error wrapping ErrMalformedData.
	Load() (map[string]models.DayRecord, error)
	Close() error

	// Records
	SaveRecord(models.DayRecord) error
	DeleteRecord(day string) error
	Clear() error

	// Utils
	GetConfigPath() string
}
