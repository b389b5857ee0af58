package user

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	"photoblog-backend/internal/shared/entity"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

	// Password strength: min 8 chars, at least one upper, one lower, one
	// digit. Checked as separate regexes so each failure names its rule.
	passwordUpper = regexp.MustCompile(`[A-Z]`)
	passwordLower = regexp.MustCompile(`[a-z]`)
	passwordDigit = regexp.MustCompile(`[0-9]`)
)

// NewUserConfig builds the user field map. "username" is editing-denied:
// once registered it can never be changed, whatever the payload says.
func NewUserConfig(gen entity.IDGenerator, now func() time.Time) mapping.Config[User] {
	return mapping.Config[User]{
		Entity: "user",
		New: func() *User {
			u := &User{
				ID:   gen.NewID(),
				Role: authz.RoleUser,
			}
			u.InitTimestamps(now())
			return u
		},
		// Passwords only rotate through the dedicated change-password flow,
		// which demands the current password and a confirmation.
		EditDenied: []string{"username", "password"},
		Fields: []mapping.Field[User]{
			{
				Name:      "username",
				Callbacks: []mapping.Callback{mapping.StringFunc(strings.TrimSpace)},
				Rules: []validation.Rule{
					validation.Required.Error("username is required"),
					validation.Length(6, 250).Error("username must be 6-250 characters"),
					validation.Match(usernamePattern).Error("username may only contain letters, digits, dots, dashes and underscores"),
				},
				Assign: func(u *User, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					u.Username = s
					return nil
				},
			},
			{
				Name:      "email",
				Callbacks: []mapping.Callback{mapping.StringFunc(strings.TrimSpace)},
				Rules: []validation.Rule{
					validation.Required.Error("email is required"),
					is.Email.Error("invalid email format"),
					validation.Length(5, 255),
				},
				Assign: func(u *User, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					u.Email = s
					return nil
				},
			},
			{
				Name: "password",
				Rules: []validation.Rule{
					validation.Required.Error("password is required"),
					validation.Length(8, 128).Error("password must be 8-128 characters"),
					validation.Match(passwordUpper).Error("password must contain at least one uppercase letter"),
					validation.Match(passwordLower).Error("password must contain at least one lowercase letter"),
					validation.Match(passwordDigit).Error("password must contain at least one number"),
				},
				Assign: func(u *User, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					u.plainPassword = s
					return nil
				},
			},
		},
	}
}

// NewProfileConfig builds the profile field map. Profiles carry a single
// optional avatar URL; the lenient path skips it when absent.
func NewProfileConfig() mapping.Config[Profile] {
	return mapping.Config[Profile]{
		Entity: "profile",
		Fields: []mapping.Field[Profile]{
			{
				Name:     "avatar",
				Optional: true,
				Rules: []validation.Rule{
					is.URL.Error("avatar must be a valid URL"),
				},
				Assign: func(p *Profile, v interface{}) error {
					s, err := mapping.AsString(v)
					if err != nil {
						return err
					}
					p.Avatar = s
					return nil
				},
			},
		},
	}
}
