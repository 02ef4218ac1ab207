package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 {
		return Clock{}, errs.ErrInvalidTimeSlot
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, errs.ErrInvalidTimeSlot
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, errs.ErrInvalidTimeSlot
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

type TimeSlot struct {
	Start Clock
	End   Clock
}

var dashReplacer = strings.NewReplacer("–", "-", "—", "-", " ", "", "\t", "")

// ParseTimeSlot accepts "HH:MM-HH:MM" with surrounding whitespace and en or em
// dashes; start must be strictly before end.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	s := dashReplacer.Replace(strings.TrimSpace(raw))
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return TimeSlot{}, errs.ErrInvalidTimeSlot
	}
	start, err := ParseClock(left)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := ParseClock(right)
	if err != nil {
		return TimeSlot{}, err
	}
	if start.Minutes() >= end.Minutes() {
		return TimeSlot{}, errs.ErrInvalidTimeSlot
	}
	return TimeSlot{Start: start, End: end}, nil
}

func (t TimeSlot) String() string {
	return t.Start.String() + "-" + t.End.String()
}

// CheckNotPast rejects a day before today, or today with a start that is not
// strictly after now, both judged in loc.
func CheckNotPast(d Date, slot TimeSlot, now time.Time, loc *time.Location) error {
	today := DateOf(now.In(loc))
	if d.Before(today.Time) {
		return errs.ErrPastBooking
	}
	if d.Equal(today.Time) && !d.In(slot.Start, loc).After(now) {
		return errs.ErrPastBooking
	}
	return nil
}
