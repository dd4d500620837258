package timestamp

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

var errRequired = errors.New("timestamp is required")

// Time is a required Razorpay timestamp field.
type Time struct {
	time.Time
}

// NullTime is an optional Razorpay timestamp field. Null and 0 decode as absent.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Unix builds a Time from seconds since the epoch.
func Unix(sec int64) Time {
	return Time{Time: time.Unix(sec, 0).UTC()}
}

// NullUnix builds a present NullTime from seconds since the epoch.
func NullUnix(sec int64) NullTime {
	return NullTime{Time: time.Unix(sec, 0).UTC(), Valid: true}
}

func (t *Time) UnmarshalJSON(data []byte) error {
	value, err := rawValue(data)
	if err != nil {
		return err
	}
	decoded, err := Default().Decode(value)
	if err != nil {
		return err
	}
	if decoded == nil {
		return errRequired
	}
	t.Time = *decoded
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(Encode(t.Time), 10)), nil
}

func (t *NullTime) UnmarshalJSON(data []byte) error {
	value, err := rawValue(data)
	if err != nil {
		return err
	}
	decoded, err := Default().DecodeOptional(value)
	if err != nil {
		return err
	}
	if decoded == nil {
		*t = NullTime{}
		return nil
	}
	*t = NullTime{Time: *decoded, Valid: true}
	return nil
}

func (t NullTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(Encode(t.Time), 10)), nil
}

// Ptr returns nil when the value is absent.
func (t NullTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func rawValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	switch value.(type) {
	case nil, json.Number, string:
		return value, nil
	default:
		return nil, &InvalidTimestampError{Value: string(data)}
	}
}
