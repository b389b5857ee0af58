package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
)

type fixedGen struct{ id uuid.UUID }

func (g fixedGen) NewID() uuid.UUID { return g.id }

func testClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func validRegistration() mapping.Payload {
	return mapping.Payload{
		"username": "jane.doe",
		"email":    "jane@example.com",
		"password": "Sup3rSecret",
	}
}

func TestUserConfigCreate(t *testing.T) {
	id := uuid.New()
	cfg := NewUserConfig(fixedGen{id}, testClock())

	u, err := mapping.Create(validRegistration(), cfg)
	require.NoError(t, err)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, "jane.doe", u.Username)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, authz.RoleUser, u.Role)
	assert.Equal(t, "Sup3rSecret", u.PlainPassword())
	assert.Empty(t, u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.IsTrashed())
}

func TestUserConfigTrimsUsername(t *testing.T) {
	cfg := NewUserConfig(fixedGen{uuid.New()}, testClock())

	payload := validRegistration()
	payload["username"] = "  jane.doe  "

	u, err := mapping.Create(payload, cfg)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", u.Username)
}

func TestUserConfigMissingField(t *testing.T) {
	cfg := NewUserConfig(fixedGen{uuid.New()}, testClock())

	payload := validRegistration()
	delete(payload, "email")

	_, err := mapping.Create(payload, cfg)

	var missing *mapping.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "email", missing.Field)
}

func TestUserConfigValidation(t *testing.T) {
	cfg := NewUserConfig(fixedGen{uuid.New()}, testClock())

	cases := []struct {
		name  string
		field string
		value interface{}
	}{
		{"short username", "username", "abc"},
		{"username with spaces", "username", "jane doe here"},
		{"bad email", "email", "not-an-email"},
		{"short password", "password", "Ab1"},
		{"password without uppercase", "password", "sup3rsecret"},
		{"password without lowercase", "password", "SUP3RSECRET"},
		{"password without digit", "password", "SuperSecret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validRegistration()
			payload[tc.field] = tc.value

			_, err := mapping.Create(payload, cfg)

			var vErr *mapping.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestUserConfigUpdateDeniesUsername(t *testing.T) {
	cfg := NewUserConfig(fixedGen{uuid.New()}, testClock())

	u, err := mapping.Create(validRegistration(), cfg)
	require.NoError(t, err)

	err = mapping.Update(mapping.Payload{
		"username": "someone.else",
		"email":    "new@example.com",
	}, u, cfg)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe", u.Username)
	assert.Equal(t, "new@example.com", u.Email)
}

func TestProfileConfigAvatarOptional(t *testing.T) {
	cfg := NewProfileConfig()

	p, err := mapping.Create(mapping.Payload{"unrelated": "value"}, cfg)
	require.NoError(t, err)
	assert.Empty(t, p.Avatar)

	p, err = mapping.Create(mapping.Payload{"avatar": "https://cdn.example.com/a.png"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", p.Avatar)

	_, err = mapping.Create(mapping.Payload{"avatar": "not a url"}, cfg)
	var vErr *mapping.ValidationError
	require.ErrorAs(t, err, &vErr)
}
