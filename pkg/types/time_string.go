package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeStringLayout = "15:04"

// TimeString время суток в формате HH:MM без привязки к дате
// Нулевое значение означает "время не указано"
type TimeString struct {
	minutes int // минут с начала суток
	set     bool
}

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), set: true}
}

// NewTimeStringFromString парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке
// Используется только для констант
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// IsZero возвращает true, если время не указано
func (t TimeString) IsZero() bool {
	return !t.set
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// String возвращает время в формате HH:MM или пустую строку
func (t TimeString) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalJSON сериализует время как "HH:MM" или null
func (t TimeString) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON принимает "HH:MM", пустую строку или null
func (t *TimeString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TimeString{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	if s == "" {
		*t = TimeString{}
		return nil
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if !t.set {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner для чтения колонки TIME ("HH:MM" или "HH:MM:SS")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
