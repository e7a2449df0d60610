package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_ChangedPasswordAfter(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := issuedAt.Add(d)

		return &ts
	}

	tests := []struct {
		name      string
		changedAt *time.Time
		want      bool
	}{
		{name: "never changed", changedAt: nil, want: false},
		{name: "changed before issuance", changedAt: at(-time.Hour), want: false},
		{name: "same second", changedAt: at(500 * time.Millisecond), want: false},
		{name: "changed after issuance", changedAt: at(time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{PasswordChangedAt: tt.changedAt}
			assert.Equal(t, tt.want, user.ChangedPasswordAfter(issuedAt))
		})
	}
}

func TestUser_HasPendingReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(10 * time.Minute)

	assert.False(t, (&User{}).HasPendingReset(now))
	assert.True(t, (&User{PasswordResetToken: "hash", PasswordResetExpires: &expires}).HasPendingReset(now))
	assert.False(t, (&User{PasswordResetToken: "hash", PasswordResetExpires: &expires}).HasPendingReset(expires))
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "guid", "lead-guide"})

	assert.Equal(t, Roles{RoleAdmin, RoleLeadGuide}, roles)
	assert.True(t, roles.Contains(RoleLeadGuide))
	assert.False(t, roles.Contains(RoleGuide))
	assert.Equal(t, []string{"admin", "lead-guide"}, roles.ToStrings())
}
