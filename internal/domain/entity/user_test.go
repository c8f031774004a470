package entity

import (
	"testing"
	"time"
)

func resetUser(token string, expires time.Time) *User {
	return &User{ResetPasswordToken: &token, ResetPasswordExpires: &expires}
}

func TestUserHasValidResetToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		user *User
		tok  string
		want bool
	}{
		{
			name: "matching unexpired token",
			user: resetUser("abc", now.Add(time.Hour)),
			tok:  "abc",
			want: true,
		},
		{
			name: "wrong token",
			user: resetUser("abc", now.Add(time.Hour)),
			tok:  "xyz",
			want: false,
		},
		{
			name: "expired token",
			user: resetUser("abc", now.Add(-time.Minute)),
			tok:  "abc",
			want: false,
		},
		{
			name: "no token stored",
			user: &User{},
			tok:  "abc",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.HasValidResetToken(tt.tok, now); got != tt.want {
				t.Errorf("HasValidResetToken() = %v, want %v", got, tt.want)
			}
		})
	}
}
