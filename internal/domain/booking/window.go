package booking

import (
	"fmt"
	"time"

	"creator-booking/internal/pkg/errs"
)

// TimeWindow is the half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow requires end > start and end > now. The start may lie in the
// past so an in-progress slot can still be booked.
func NewTimeWindow(start, end, now time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, errs.Wrap(errs.ErrInvalidTimeWindow, "end must be after start")
	}
	if !end.After(now) {
		return TimeWindow{}, errs.Wrap(errs.ErrInvalidTimeWindow, "end must be in the future")
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start.UTC(), end: end.UTC()}
}

func (w TimeWindow) Start() time.Time        { return w.start }
func (w TimeWindow) End() time.Time          { return w.end }
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

func (w TimeWindow) Contains(now time.Time) bool {
	return !w.start.After(now) && w.end.After(now)
}

func (w TimeWindow) ExpiredAt(now time.Time) bool {
	return !w.end.After(now)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
