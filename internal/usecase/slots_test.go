package usecase

import (
	"reflect"
	"testing"
	"time"

	"profesionesuy-api/internal/domain/entity"
)

func window(weekday int, start, end string) entity.AvailabilityWindow {
	return entity.AvailabilityWindow{Weekday: weekday, StartTime: start, EndTime: end}
}

func blocking(t string) entity.Appointment {
	return entity.Appointment{Time: t, Status: entity.AppointmentStatusConfirmed}
}

func TestComputeAvailableSlots(t *testing.T) {
	const slot = 30 * time.Minute

	tests := []struct {
		name     string
		windows  []entity.AvailabilityWindow
		blocking []entity.Appointment
		weekday  int
		want     []string
	}{
		{
			name:    "monday morning window with one booked slot",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "12:00")},
			blocking: []entity.Appointment{
				blocking("10:00"),
			},
			weekday: 1,
			want:    []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:    "no bookings yields every slot",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "11:00")},
			weekday: 1,
			want:    []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:    "no window for the weekday",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "12:00")},
			weekday: 2,
			want:    []string{},
		},
		{
			name: "two windows same day are merged and sorted",
			windows: []entity.AvailabilityWindow{
				window(3, "14:00", "15:00"),
				window(3, "09:00", "10:00"),
			},
			weekday: 3,
			want:    []string{"09:00", "09:30", "14:00", "14:30"},
		},
		{
			name: "overlapping windows do not duplicate slots",
			windows: []entity.AvailabilityWindow{
				window(4, "09:00", "10:30"),
				window(4, "10:00", "11:00"),
			},
			weekday: 4,
			want:    []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:    "slot that does not fit in the window is dropped",
			windows: []entity.AvailabilityWindow{window(5, "09:00", "09:45")},
			weekday: 5,
			want:    []string{"09:00"},
		},
		{
			name:    "fully booked window",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "10:00")},
			blocking: []entity.Appointment{
				blocking("09:00"),
				blocking("09:30"),
			},
			weekday: 1,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAvailableSlots(tt.windows, tt.blocking, tt.weekday, slot)
			if err != nil {
				t.Fatalf("ComputeAvailableSlots() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeAvailableSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeAvailableSlotsHourGranularity(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "09:00", "12:00")}
	got, err := ComputeAvailableSlots(windows, []entity.Appointment{blocking("10:00")}, 1, time.Hour)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots() error = %v", err)
	}
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeAvailableSlots() = %v, want %v", got, want)
	}
}

func TestComputeAvailableSlotsBadTime(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "9am", "12:00")}
	if _, err := ComputeAvailableSlots(windows, nil, 1, 30*time.Minute); err != ErrInvalidTimeFormat {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestValidateWindows(t *testing.T) {
	tests := []struct {
		name    string
		windows []entity.AvailabilityWindow
		wantErr error
	}{
		{
			name:    "valid set",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "12:00"), window(5, "13:00", "18:00")},
		},
		{
			name:    "empty set is valid",
			windows: nil,
		},
		{
			name:    "start after end",
			windows: []entity.AvailabilityWindow{window(1, "12:00", "09:00")},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "zero length window",
			windows: []entity.AvailabilityWindow{window(1, "09:00", "09:00")},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "weekday out of range",
			windows: []entity.AvailabilityWindow{window(7, "09:00", "12:00")},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "bad time format",
			windows: []entity.AvailabilityWindow{window(1, "25:77", "26:00")},
			wantErr: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateWindows(tt.windows); err != tt.wantErr {
				t.Errorf("ValidateWindows() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{575, "09:35"},
		{1425, "23:45"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.minutes); got != tt.want {
			t.Errorf("formatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
