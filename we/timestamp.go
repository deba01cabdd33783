package we

import (
	"time"

	"github.com/pkg/errors"
)

type Timestamp string

const RFC3339Micro = "2006-01-02T15:04:05.999999Z07:00"

func (t Timestamp) String() string {
	return string(t)
}

func (t Timestamp) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, string(t))
}

// TimestampFromTime renders t in UTC. Instants outside the years 0..9999 have no RFC 3339
// form and are reported as internal errors.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	utc := t.UTC()
	if year := utc.Year(); year < 0 || year > 9999 {
		return "", Internal(errors.Errorf("timestamp year %d out of range", year))
	}

	return Timestamp(utc.Format(RFC3339Micro)), nil
}
