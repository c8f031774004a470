package converter

import (
	"testing"
	"time"

	"profesionesuy-api/internal/domain/entity"
)

func TestUserToResponseRoleName(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
		want string
	}{
		{
			name: "preloaded role association",
			user: &entity.User{RoleID: entity.RoleIDClient, Role: entity.Role{ID: entity.RoleIDClient, RoleName: entity.RoleClient}},
			want: entity.RoleClient,
		},
		{
			name: "client without preloaded role",
			user: &entity.User{RoleID: entity.RoleIDClient},
			want: entity.RoleClient,
		},
		{
			name: "professional without preloaded role",
			user: &entity.User{RoleID: entity.RoleIDProfessional},
			want: entity.RoleProfessional,
		},
		{
			name: "unknown role id",
			user: &entity.User{RoleID: 99},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := UserToResponse(tt.user)
			if resp == nil {
				t.Fatal("UserToResponse returned nil")
			}
			if resp.Role != tt.want {
				t.Errorf("Role = %q, want %q", resp.Role, tt.want)
			}
		})
	}
}

func TestProfessionalProfileToResponseVerification(t *testing.T) {
	verifiedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	profile := &entity.ProfessionalProfile{
		Profession:         "electricista",
		IdentityVerified:   true,
		IdentityVerifiedAt: &verifiedAt,
		LicenseVerified:    true,
		LicenseVerifiedAt:  &verifiedAt,
	}

	resp := ProfessionalProfileToResponse(profile)
	if resp == nil {
		t.Fatal("ProfessionalProfileToResponse returned nil")
	}

	v := resp.Verification
	if !v.IdentityVerified || v.IdentityVerifiedAt == nil || !v.IdentityVerifiedAt.Equal(verifiedAt) {
		t.Errorf("identity verification not carried: %+v", v)
	}
	if !v.LicenseVerified || v.LicenseVerifiedAt == nil || !v.LicenseVerifiedAt.Equal(verifiedAt) {
		t.Errorf("license verification not carried: %+v", v)
	}
	if v.BackgroundVerified || v.BackgroundVerifiedAt != nil {
		t.Errorf("background verification should be unset: %+v", v)
	}
}
