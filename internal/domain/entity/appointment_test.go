package entity

import (
	"testing"
	"time"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.from}
		if got := a.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAppointmentBlocks(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		if got := a.Blocks(); got != tt.want {
			t.Errorf("Blocks() with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	montevideo := time.FixedZone("UYT", -3*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "late evening stays on the local day",
			in:   time.Date(2026, 9, 1, 23, 30, 0, 0, montevideo),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, montevideo),
		},
		{
			name: "early morning stays on the local day",
			in:   time.Date(2026, 9, 1, 0, 15, 0, 0, montevideo),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, montevideo),
		},
		{
			name: "utc midnight unchanged",
			in:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.in)
			if !got.Equal(tt.want) || got.Location() != tt.in.Location() {
				t.Errorf("StartOfDay(%v) = %v, want %v in same location", tt.in, got, tt.want)
			}
		})
	}
}
