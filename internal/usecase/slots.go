package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"profesionesuy-api/internal/domain/entity"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidWindow     = errors.New("window start time must be before end time")
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes since midnight back to "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateWindows checks weekday range, time format and ordering for a
// window set. Used both at registration and on schedule replacement.
func ValidateWindows(windows []entity.AvailabilityWindow) error {
	for _, w := range windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			return ErrInvalidWeekday
		}
		start, err := parseClock(w.StartTime)
		if err != nil {
			return err
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return err
		}
		if start >= end {
			return ErrInvalidWindow
		}
	}
	return nil
}

// ComputeAvailableSlots discretizes the professional's windows for one
// weekday into slotSize steps and removes every slot that overlaps a
// blocking (pending or confirmed) appointment. Each appointment occupies
// [time, time+slotSize). Result is sorted, deduplicated "HH:MM" strings.
func ComputeAvailableSlots(windows []entity.AvailabilityWindow, blocking []entity.Appointment, weekday int, slotSize time.Duration) ([]string, error) {
	slotMins := int(slotSize.Minutes())
	if slotMins <= 0 {
		return nil, errors.New("slot size must be positive")
	}

	type interval struct{ start, end int }
	busy := make([]interval, 0, len(blocking))
	for _, a := range blocking {
		start, err := parseClock(a.Time)
		if err != nil {
			return nil, err
		}
		busy = append(busy, interval{start: start, end: start + slotMins})
	}

	seen := make(map[int]bool)
	slots := make([]int, 0)
	for _, w := range windows {
		if w.Weekday != weekday {
			continue
		}
		start, err := parseClock(w.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return nil, err
		}

		// Only slots that fit entirely inside the window count.
		for t := start; t+slotMins <= end; t += slotMins {
			if seen[t] {
				continue
			}
			free := true
			for _, b := range busy {
				if t < b.end && b.start < t+slotMins {
					free = false
					break
				}
			}
			if free {
				seen[t] = true
				slots = append(slots, t)
			}
		}
	}

	sort.Ints(slots)
	result := make([]string, len(slots))
	for i, t := range slots {
		result[i] = formatClock(t)
	}
	return result, nil
}
