// Package timebucket turns the browse screen's relative filters
// ("today_morning", "day3_night") into concrete time windows. All
// arithmetic runs on the client's wall clock, reconstructed from the
// time-zone offset it sends; the server's own zone is never consulted.
package timebucket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodNight     Period = "night"
)

// Periods in display order.
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodNight}

// MaxDayOffset is the furthest selectable day: today plus six.
const MaxDayOffset = 6

var ErrBadID = errors.New("invalid time filter id")

// Bucket is one selectable (day, period) pair.
type Bucket struct {
	DayOffset int
	Period    Period
}

// ID renders the wire identifier: today_<period> for offset 0,
// day<offset>_<period> otherwise.
func (b Bucket) ID() string {
	if b.DayOffset == 0 {
		return "today_" + string(b.Period)
	}
	return fmt.Sprintf("day%d_%s", b.DayOffset, b.Period)
}

// Parse decodes a wire identifier back into a bucket.
func Parse(id string) (Bucket, error) {
	day, period, ok := strings.Cut(id, "_")
	if !ok {
		return Bucket{}, ErrBadID
	}

	var offset int
	switch {
	case day == "today":
		offset = 0
	case strings.HasPrefix(day, "day"):
		n, err := strconv.Atoi(strings.TrimPrefix(day, "day"))
		if err != nil || n < 1 || n > MaxDayOffset {
			return Bucket{}, ErrBadID
		}
		offset = n
	default:
		return Bucket{}, ErrBadID
	}

	switch Period(period) {
	case PeriodMorning, PeriodAfternoon, PeriodNight:
	default:
		return Bucket{}, ErrBadID
	}

	return Bucket{DayOffset: offset, Period: Period(period)}, nil
}

// LocalNow reconstructs the client's wall clock from an instant and the
// offset it reported. The offset follows the JS Date.getTimezoneOffset
// convention: minutes behind UTC, so UTC+2 sends -120.
func LocalNow(now time.Time, tzOffsetMinutes int) time.Time {
	return now.UTC().Add(-time.Duration(tzOffsetMinutes) * time.Minute)
}

// Label is the human name for a bucket's day: Today, Tomorrow, or M/D.
func (b Bucket) Label(now time.Time, tzOffsetMinutes int) string {
	switch b.DayOffset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	day := b.day(now, tzOffsetMinutes)
	return fmt.Sprintf("%d/%d", int(day.Month()), day.Day())
}

// day returns local midnight of the bucket's day. time.Date normalizes
// out-of-range day numbers, so month and year boundaries wrap.
func (b Bucket) day(now time.Time, tzOffsetMinutes int) time.Time {
	local := LocalNow(now, tzOffsetMinutes)
	return time.Date(local.Year(), local.Month(), local.Day()+b.DayOffset, 0, 0, 0, 0, time.UTC)
}

// Window is a half-open [Start, End) range of client-local wall-clock
// time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Window computes the bucket's concrete range. Night runs from 18:00
// into 05:00 of the following day.
func (b Bucket) Window(now time.Time, tzOffsetMinutes int) Window {
	day := b.day(now, tzOffsetMinutes)

	switch b.Period {
	case PeriodMorning:
		return Window{Start: day.Add(5 * time.Hour), End: day.Add(12 * time.Hour)}
	case PeriodAfternoon:
		return Window{Start: day.Add(12 * time.Hour), End: day.Add(18 * time.Hour)}
	default:
		return Window{Start: day.Add(18 * time.Hour), End: day.Add(29 * time.Hour)}
	}
}

// Contains reports whether an event's calendar date ("2006-01-02") and
// local time of day ("15:04") fall inside the window.
func (w Window) Contains(date string, timeOfDay string) bool {
	t, err := time.Parse("2006-01-02 15:04", date+" "+timeOfDay)
	if err != nil {
		return false
	}
	return !t.Before(w.Start) && t.Before(w.End)
}

// Option is one selectable filter entry for the browse UI.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Day   string `json:"day"`
}

// Options lists every selectable bucket: three periods for each of the
// next seven days, in order.
func Options(now time.Time, tzOffsetMinutes int) []Option {
	opts := make([]Option, 0, (MaxDayOffset+1)*len(Periods))
	for d := 0; d <= MaxDayOffset; d++ {
		for _, p := range Periods {
			b := Bucket{DayOffset: d, Period: p}
			opts = append(opts, Option{
				ID:    b.ID(),
				Label: b.Label(now, tzOffsetMinutes),
				Day:   b.day(now, tzOffsetMinutes).Format("2006-01-02"),
			})
		}
	}
	return opts
}
