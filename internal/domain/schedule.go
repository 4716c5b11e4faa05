package domain

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// ScheduleKind вид расписания
type ScheduleKind string

const (
	ScheduleSingle ScheduleKind = "single"
	ScheduleMulti  ScheduleKind = "multi"
	ScheduleRange  ScheduleKind = "range"
)

// Schedule выбор дат в сессии мастера
// Одно из SingleDate, MultiDate или DateRange в зависимости от услуги
type Schedule interface {
	Kind() ScheduleKind
	// Clone глубокая копия без общих слайсов
	Clone() Schedule
	isSchedule()
}

// DaySchedule время заезда и выезда на один день
type DaySchedule struct {
	Date         time.Time        `json:"date"`
	CheckInTime  types.TimeString `json:"checkInTime"`
	CheckOutTime types.TimeString `json:"checkOutTime"`
}

// MarshalJSON дата в формате YYYY-MM-DD
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date         string           `json:"date"`
		CheckInTime  types.TimeString `json:"checkInTime"`
		CheckOutTime types.TimeString `json:"checkOutTime"`
	}{
		Date:         FormatDate(d.Date),
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
	})
}

// UnmarshalJSON принимает дату в формате YYYY-MM-DD
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date         string           `json:"date"`
		CheckInTime  types.TimeString `json:"checkInTime"`
		CheckOutTime types.TimeString `json:"checkOutTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := ParseDate(raw.Date)
	if err != nil {
		return err
	}
	*d = DaySchedule{Date: date, CheckInTime: raw.CheckInTime, CheckOutTime: raw.CheckOutTime}
	return nil
}

// SingleDate запись на груминг, дрессировку или оценку
type SingleDate struct {
	Date         time.Time
	CheckInTime  types.TimeString
	CheckOutTime types.TimeString
}

func (SingleDate) Kind() ScheduleKind { return ScheduleSingle }
func (s SingleDate) Clone() Schedule  { return s }
func (SingleDate) isSchedule()        {}

// IsSet true, если дата выбрана
func (s SingleDate) IsSet() bool {
	return !s.Date.IsZero()
}

// MultiDate дневное пребывание: набор дней, отсортирован и без повторов
type MultiDate struct {
	Dates []DaySchedule
}

func (MultiDate) Kind() ScheduleKind { return ScheduleMulti }
func (MultiDate) isSchedule()        {}

func (m MultiDate) Clone() Schedule {
	return MultiDate{Dates: cloneDays(m.Dates)}
}

// First самый ранний выбранный день
func (m MultiDate) First() (DaySchedule, bool) {
	if len(m.Dates) == 0 {
		return DaySchedule{}, false
	}
	return m.Dates[0], true
}

// DateRange передержка: с Start по End со временем по дням
type DateRange struct {
	Start  time.Time
	End    time.Time
	PerDay []DaySchedule
}

func (DateRange) Kind() ScheduleKind { return ScheduleRange }
func (DateRange) isSchedule()        {}

func (r DateRange) Clone() Schedule {
	return DateRange{Start: r.Start, End: r.End, PerDay: cloneDays(r.PerDay)}
}

// IsComplete true, если обе границы заданы и End не раньше Start
func (r DateRange) IsComplete() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Nights число оплачиваемых ночей, не меньше одной
func (r DateRange) Nights() int {
	nights := int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// NewScheduleFor пустое расписание в форме, нужной услуге
// nil, пока услуга не выбрана
func NewScheduleFor(service ServiceID) Schedule {
	switch service {
	case ServiceDaycare:
		return MultiDate{}
	case ServiceBoarding:
		return DateRange{}
	case ServiceGrooming, ServiceTraining, ServiceEvaluation:
		return SingleDate{}
	default:
		return nil
	}
}

// NormalizeDays обрезает даты до дня и сортирует по возрастанию
// Нулевые даты отбрасываются, из повторов остается последний
func NormalizeDays(days []DaySchedule) []DaySchedule {
	byDate := make(map[time.Time]DaySchedule, len(days))
	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		d.Date = DateOnly(d.Date)
		byDate[d.Date] = d
	}

	result := make([]DaySchedule, 0, len(byDate))
	for _, d := range byDate {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// BuildPerDay строит по записи на каждый день от start до end включительно
// Дни из overrides сохраняют свое время, новые получают время по умолчанию
func BuildPerDay(start, end time.Time, checkIn, checkOut types.TimeString, overrides []DaySchedule) []DaySchedule {
	start, end = DateOnly(start), DateOnly(end)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}

	existing := make(map[time.Time]DaySchedule, len(overrides))
	for _, o := range overrides {
		existing[DateOnly(o.Date)] = o
	}

	result := make([]DaySchedule, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if o, ok := existing[day]; ok {
			o.Date = day
			result = append(result, o)
			continue
		}
		result = append(result, DaySchedule{Date: day, CheckInTime: checkIn, CheckOutTime: checkOut})
	}
	return result
}

// DateOnly обрезает t до полуночи UTC того же дня
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает YYYY-MM-DD, пустая строка дает нулевое время
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate форматирует дату как YYYY-MM-DD, нулевое время дает пустую строку
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

func cloneDays(days []DaySchedule) []DaySchedule {
	if days == nil {
		return nil
	}
	out := make([]DaySchedule, len(days))
	copy(out, days)
	return out
}
