package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// Tab вкладка списка записей
type Tab string

const (
	TabAll      Tab = "all"
	TabUpcoming Tab = "upcoming"
	TabPrevious Tab = "previous"
)

// PeriodKind вид временного периода
type PeriodKind string

const (
	PeriodAll     PeriodKind = "all"
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
	PeriodCustom  PeriodKind = "custom"
)

// Period временной период фильтрации.
// Start и End используются только для PeriodCustom, границы включительные.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
}

// View полный набор фильтров одного представления списка
type View struct {
	Tab    Tab
	Query  string
	Period Period
}

// IsUpcoming возвращает true, если дата записи (без времени) не раньше даты reference
func IsUpcoming(record domain.AppointmentRecord, reference time.Time) bool {
	if record.Date.IsZero() {
		return false
	}
	return !dayOf(inLocation(record.Date, reference.Location())).Before(dayOf(reference))
}

// PartitionByTab оставляет записи выбранной вкладки
func PartitionByTab(records []domain.AppointmentRecord, tab Tab, reference time.Time) []domain.AppointmentRecord {
	switch tab {
	case TabUpcoming:
		return filter(records, func(r domain.AppointmentRecord) bool { return IsUpcoming(r, reference) })
	case TabPrevious:
		return filter(records, func(r domain.AppointmentRecord) bool { return !IsUpcoming(r, reference) })
	default:
		return filter(records, func(domain.AppointmentRecord) bool { return true })
	}
}

// FilterByQuery ищет подстроку без учета регистра в имени клиента,
// названиях услуг, статусе и длинной форме даты. Пустой запрос ничего не отсекает.
func FilterByQuery(records []domain.AppointmentRecord, query string) []domain.AppointmentRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return filter(records, func(domain.AppointmentRecord) bool { return true })
	}

	return filter(records, func(r domain.AppointmentRecord) bool {
		haystacks := []string{
			r.Customer.Username,
			r.ServiceNames(),
			r.Status,
			r.LongDate(),
		}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				return true
			}
		}
		return false
	})
}

// FilterByPeriod оставляет записи, попадающие в период относительно reference
func FilterByPeriod(records []domain.AppointmentRecord, period Period, reference time.Time) []domain.AppointmentRecord {
	from, to, bounded := period.bounds(reference)
	if !bounded {
		return filter(records, func(domain.AppointmentRecord) bool { return true })
	}

	return filter(records, func(r domain.AppointmentRecord) bool {
		if r.Date.IsZero() {
			return false
		}
		// Сравниваем в локации reference, чтобы календарные дни совпадали
		date := inLocation(r.Date, from.Location())
		return !date.Before(from) && !date.After(to)
	})
}

// Apply применяет фильтры строго по порядку: вкладка -> поиск -> период
func Apply(records []domain.AppointmentRecord, view View, reference time.Time) []domain.AppointmentRecord {
	result := PartitionByTab(records, view.Tab, reference)
	result = FilterByQuery(result, view.Query)
	return FilterByPeriod(result, view.Period, reference)
}

// ParseTab разбирает название вкладки; пустое значение означает все записи
func ParseTab(value string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case "", TabAll:
		return TabAll, nil
	case TabUpcoming:
		return TabUpcoming, nil
	case TabPrevious:
		return TabPrevious, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, value)
	}
}

// ParsePeriod разбирает период из параметров запроса (даты в формате YYYY-MM-DD)
func ParsePeriod(kind, start, end string, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.Local
	}

	switch PeriodKind(strings.ToLower(strings.TrimSpace(kind))) {
	case "", PeriodAll:
		return Period{Kind: PeriodAll}, nil
	case PeriodDaily:
		return Period{Kind: PeriodDaily}, nil
	case PeriodWeekly:
		return Period{Kind: PeriodWeekly}, nil
	case PeriodMonthly:
		return Period{Kind: PeriodMonthly}, nil
	case PeriodYearly:
		return Period{Kind: PeriodYearly}, nil
	case PeriodCustom:
		from, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(start), loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
		}
		to, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(end), loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
		}
		if to.Before(from) {
			return Period{}, fmt.Errorf("%w: end is before start", ErrInvalidRange)
		}
		return Period{Kind: PeriodCustom, Start: from, End: to}, nil
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, kind)
	}
}

// bounds возвращает включительные границы периода; false - период без ограничений
func (p Period) bounds(reference time.Time) (time.Time, time.Time, bool) {
	day := dayOf(reference)

	switch p.Kind {
	case PeriodDaily:
		return day, domain.EndOfDay(day), true
	case PeriodWeekly:
		// Неделя с воскресенья по субботу
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		return sunday, domain.EndOfDay(sunday.AddDate(0, 0, 6)), true
	case PeriodMonthly:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return first, domain.EndOfDay(first.AddDate(0, 1, -1)), true
	case PeriodYearly:
		first := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return first, domain.EndOfDay(time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())), true
	case PeriodCustom:
		if p.Start.IsZero() || p.End.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		return dayOf(p.Start), domain.EndOfDay(p.End), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func dayOf(t time.Time) time.Time {
	return domain.StartOfDay(t)
}

// inLocation переносит календарную дату в другую локацию без сдвига дня
func inLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func filter(records []domain.AppointmentRecord, keep func(domain.AppointmentRecord) bool) []domain.AppointmentRecord {
	result := make([]domain.AppointmentRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
