package timestamp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Bounds of what can be represented as a calendar time (years 1 through 9999).
const (
	MinUnix int64 = -62135596800
	MaxUnix int64 = 253402300799
)

const dateLayout = "2006-01-02"

// ErrInvalidTimestamp is matched by every InvalidTimestampError.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// InvalidTimestampError carries the value that could not be converted.
type InvalidTimestampError struct {
	Value any
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %v (%T)", e.Value, e.Value)
}

func (e *InvalidTimestampError) Is(target error) bool {
	return target == ErrInvalidTimestamp
}

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Codec converts Razorpay timestamps (integer seconds since the Unix epoch)
// and a few legacy shapes into time.Time values.
type Codec struct {
	// UseTZ marks stored times as timezone-aware. Date-only values are then
	// pinned to UTC and a warning is logged.
	UseTZ  bool
	logger *zap.Logger
}

type Option func(*Codec)

func WithUseTZ(useTZ bool) Option {
	return func(c *Codec) { c.UseTZ = useTZ }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a timezone-aware codec unless configured otherwise.
func New(opts ...Option) *Codec {
	c := &Codec{UseTZ: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultMu    sync.RWMutex
	defaultCodec = New()
)

// Default returns the codec used by the JSON field types.
func Default() *Codec {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCodec
}

// SetDefault replaces the codec used by the JSON field types.
func SetDefault(c *Codec) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defaultCodec = c
	defaultMu.Unlock()
}

// Decode normalizes value into a time. A nil value yields a nil time.
func (c *Codec) Decode(value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return v, nil
	case Date:
		return c.fromDate(v), nil
	case *Date:
		if v == nil {
			return nil, nil
		}
		return c.fromDate(*v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return fromUnix(i, 0, value)
		}
		f, err := v.Float64()
		if err != nil {
			return nil, &InvalidTimestampError{Value: value}
		}
		return fromFloat(f, value)
	case float64:
		return fromFloat(v, value)
	case float32:
		return fromFloat(float64(v), value)
	case int:
		return fromUnix(int64(v), 0, value)
	case int8:
		return fromUnix(int64(v), 0, value)
	case int16:
		return fromUnix(int64(v), 0, value)
	case int32:
		return fromUnix(int64(v), 0, value)
	case int64:
		return fromUnix(v, 0, value)
	case uint:
		return fromUint(uint64(v), value)
	case uint8:
		return fromUint(uint64(v), value)
	case uint16:
		return fromUint(uint64(v), value)
	case uint32:
		return fromUint(uint64(v), value)
	case uint64:
		return fromUint(v, value)
	case string:
		return c.fromString(v)
	default:
		return nil, &InvalidTimestampError{Value: value}
	}
}

// DecodeOptional treats falsy values (nil, zero, empty string) as absent.
// Razorpay reports unset times as 0 or null, which must not become the epoch.
func (c *Codec) DecodeOptional(value any) (*time.Time, error) {
	if isAbsent(value) {
		return nil, nil
	}
	return c.Decode(value)
}

// Encode returns t as whole seconds since the Unix epoch.
func Encode(t time.Time) int64 {
	return t.Unix()
}

func (c *Codec) fromDate(d Date) *time.Time {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	if c.UseTZ {
		c.logger.Warn("received a date without time while time zone support is active, interpreting as UTC midnight",
			zap.String("value", d.String()),
		)
	}
	return &t
}

func (c *Codec) fromString(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return c.fromDate(Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}), nil
	}
	return nil, &InvalidTimestampError{Value: s}
}

func fromUnix(sec, nsec int64, original any) (*time.Time, error) {
	if sec < MinUnix || sec > MaxUnix {
		return nil, &InvalidTimestampError{Value: original}
	}
	t := time.Unix(sec, nsec).UTC()
	return &t, nil
}

func fromUint(v uint64, original any) (*time.Time, error) {
	if v > math.MaxInt64 {
		return nil, &InvalidTimestampError{Value: original}
	}
	return fromUnix(int64(v), 0, original)
}

func fromFloat(f float64, original any) (*time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &InvalidTimestampError{Value: original}
	}
	sec := math.Floor(f)
	if sec < float64(MinUnix) || sec > float64(MaxUnix) {
		return nil, &InvalidTimestampError{Value: original}
	}
	nsec := math.Round((f - sec) * 1e9)
	return fromUnix(int64(sec), int64(nsec), original)
}

func isAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *time.Time:
		return v == nil
	case *Date:
		return v == nil
	case string:
		return strings.TrimSpace(v) == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	case int:
		return v == 0
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint:
		return v == 0
	case uint8:
		return v == 0
	case uint16:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	default:
		return false
	}
}
