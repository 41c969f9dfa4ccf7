package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Roma7-7-7/poweron-notifier/internal/dal"
)

const (
	// EndOfDay closes the last interval of a daily series.
	EndOfDay = "24:00"

	msgSchedulePlaceholder  = "⚠️ *Графік відсутній*"
	msgUpdateHeader         = "🔔 *ОПУБЛІКОВАНО ОНОВЛЕННЯ!*"
	msgScheduleNotPublished = "❌ Графік на *%s* ще не опублікований\n\nСпробуйте пізніше або зачекайте автоматичного оновлення"

	messageSeparator = "⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯⎯"
)

//nolint:gochecknoglobals // status label lookup table
var statusLabels = map[string]string{
	dal.StatusOn:        "🟢 Є світло",
	dal.StatusOff:       "🔴 Немає світла",
	dal.StatusSwitching: "🟡 Перемикання",
}

//nolint:gochecknoglobals // month names for date rendering
var monthsUA = [...]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// Interval is a merged run of equal status over [From, To).
type Interval struct {
	From   string
	To     string
	Status string
}

// StatusLabel maps an upstream status code to its display label. Codes not
// known to this version render as "unknown" instead of failing.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return "⚪️ Невідомо"
}

// MergeIntervals converts a time-of-day series into merged intervals:
// consecutive keys with equal status collapse into one, and the last
// interval always closes at 24:00. Keys are sorted lexically, which is
// correct for zero-padded "HH:MM" values.
func MergeIntervals(series dal.StatusSeries) []Interval {
	if len(series) == 0 {
		return nil
	}

	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]Interval, 0, len(keys))
	from := keys[0]
	status := series[keys[0]]
	for _, k := range keys[1:] {
		if series[k] == status {
			continue
		}
		res = append(res, Interval{From: from, To: k, Status: status})
		from = k
		status = series[k]
	}
	res = append(res, Interval{From: from, To: EndOfDay, Status: status})

	return res
}

// FormatSchedule renders a series as one line per merged interval. An empty
// series yields a fixed placeholder, never an error.
func FormatSchedule(series dal.StatusSeries) string {
	intervals := MergeIntervals(series)
	if len(intervals) == 0 {
		return msgSchedulePlaceholder
	}

	var sb strings.Builder
	for i, iv := range intervals {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "`%s — %s:` %s", iv.From, iv.To, StatusLabel(iv.Status))
	}

	return sb.String()
}

// CurrentStatus returns the label in effect at the given "HH:MM" time of
// day, or empty when the time precedes the first key or the series is empty.
func CurrentStatus(series dal.StatusSeries, nowTimeOfDay string) string {
	if len(series) == 0 {
		return ""
	}

	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	status := ""
	for _, k := range keys {
		if k > nowTimeOfDay {
			break
		}
		status = series[k]
	}

	if status == "" {
		return ""
	}
	return StatusLabel(status)
}

// FormatDateUA renders a date as "<day> <month name>" in Ukrainian.
func FormatDateUA(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthsUA[t.Month()-1])
}

// BuildScheduleMessage assembles the user-facing schedule message for one
// date and group. The "now" status line is included only when the date is
// today from the reader's point of view.
func BuildScheduleMessage(series dal.StatusSeries, date time.Time, group string, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📅 *Графік на %s*\n", FormatDateUA(date))
	fmt.Fprintf(&sb, "🏘 Група: *%s*\n", group)

	if sameDay(date, now) {
		if status := CurrentStatus(series, now.Format("15:04")); status != "" {
			fmt.Fprintf(&sb, "⚡️ *Зараз:* %s\n", status)
		}
	}

	sb.WriteString(messageSeparator)
	sb.WriteByte('\n')
	sb.WriteString(FormatSchedule(series))
	sb.WriteByte('\n')
	sb.WriteString(messageSeparator)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "💡 _Оновлено о %s_", now.Format("15:04"))

	return sb.String()
}

// BuildUpdateNotification assembles the fan-out message sent when a new
// schedule revision is detected.
func BuildUpdateNotification(series dal.StatusSeries, date time.Time, group string, now time.Time) string {
	return msgUpdateHeader + "\n\n" + BuildScheduleMessage(series, date, group, now)
}

// BuildNotPublishedMessage is the user-facing response for an absent or
// expired cache entry.
func BuildNotPublishedMessage(date time.Time) string {
	return fmt.Sprintf(msgScheduleNotPublished, FormatDateUA(date))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
