package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"photoblog-backend/internal/core/authz"
	user "photoblog-backend/internal/domains/user"
	"photoblog-backend/internal/infrastructure/queue"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/pkg/jwt"
)

// fakeRepository is an in-memory user.Repository for service tests.
type fakeRepository struct {
	users    map[uuid.UUID]*user.User
	profiles map[uuid.UUID]*user.Profile
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    make(map[uuid.UUID]*user.User),
		profiles: make(map[uuid.UUID]*user.Profile),
	}
}

func (f *fakeRepository) Create(_ context.Context, u *user.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateProfile(_ context.Context, p *user.Profile) error {
	cp := *p
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeRepository) GetProfileByUserID(_ context.Context, userID uuid.UUID) (*user.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, user.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) UpdateProfile(_ context.Context, p *user.Profile) error {
	for userID, existing := range f.profiles {
		if existing.ID == p.ID {
			cp := *p
			f.profiles[userID] = &cp
			return nil
		}
	}
	return user.ErrProfileNotFound
}

func (f *fakeRepository) PurgeTrashedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, u := range f.users {
		if u.TrashedAt != nil && u.TrashedAt.Before(cutoff) {
			delete(f.users, id)
			delete(f.profiles, id)
			n++
		}
	}
	return n, nil
}

func newTestService(repo user.Repository) user.Service {
	authorizer := authz.NewAuthorizer(user.Voter{}, user.ProfileVoter{})
	tokens := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewUserService(repo, authorizer, tokens, queue.NopEnqueuer{}, entity.UUIDGenerator{}, now)
}

func registrationPayload() []byte {
	return []byte(`{
		"username": "jane.doe",
		"email": "jane@example.com",
		"password": "Sup3rSecret",
		"password_confirmation": "Sup3rSecret"
	}`)
}

func TestRegister(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	assert.Equal(t, "jane.doe", dto.Username)
	assert.Equal(t, authz.RoleUser, dto.Role)

	stored, err := repo.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))

	// Registration creates the profile as a side effect.
	p, err := repo.GetProfileByUserID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, p.UserID)
}

func TestRegisterRejectsAuthenticatedActor(t *testing.T) {
	svc := newTestService(newFakeRepository())
	actor := &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}

	_, err := svc.Register(context.Background(), actor, registrationPayload())
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestRegisterPasswordConfirmationMismatch(t *testing.T) {
	svc := newTestService(newFakeRepository())

	payload := []byte(`{
		"username": "jane.doe",
		"email": "jane@example.com",
		"password": "Sup3rSecret",
		"password_confirmation": "Different1"
	}`)

	_, err := svc.Register(context.Background(), nil, payload)
	assert.ErrorIs(t, err, user.ErrPasswordMismatch)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), nil, registrationPayload())
	assert.ErrorIs(t, err, user.ErrDuplicateUsername)
}

func TestRegisterRejectedAvatarLeavesNoAccount(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	payload := []byte(`{
		"username": "jane.doe",
		"email": "jane@example.com",
		"password": "Sup3rSecret",
		"password_confirmation": "Sup3rSecret",
		"avatar": "not a url at all"
	}`)

	_, err := svc.Register(context.Background(), nil, payload)
	require.Error(t, err)

	// A failed registration must not burn the username.
	taken, err := repo.ExistsByUsername(context.Background(), "jane.doe")
	require.NoError(t, err)
	assert.False(t, taken, "rejected registration left an account behind")

	_, err = svc.Register(context.Background(), nil, registrationPayload())
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "jane.doe",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "jane.doe", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Username: "jane.doe",
		Password: "WrongPass1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginTrashedAccount(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Role: authz.RoleUser}
	require.NoError(t, svc.Delete(context.Background(), owner, dto.ID))

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Username: "jane.doe",
		Password: "Sup3rSecret",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUpdateKeepsUsername(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Role: authz.RoleUser}
	updated, err := svc.Update(context.Background(), owner, dto.ID, []byte(`{
		"username": "hijacked.name",
		"email": "new@example.com"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "jane.doe", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUpdateIgnoresPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Role: authz.RoleUser}
	_, err = svc.Update(context.Background(), owner, dto.ID, []byte(`{
		"password": "Bypass3dChange"
	}`))
	require.NoError(t, err)

	// The hash is untouched; only ChangePassword rotates credentials.
	stored, err := repo.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))
}

func TestUpdateForbiddenForStranger(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	stranger := &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}
	_, err = svc.Update(context.Background(), stranger, dto.ID, []byte(`{"email":"x@example.com"}`))
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestDeleteIsSoft(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Role: authz.RoleUser}
	require.NoError(t, svc.Delete(context.Background(), owner, dto.ID))

	stored, err := repo.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsTrashed())
}

func TestChangePassword(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Username: "jane.doe", Role: authz.RoleUser}
	err = svc.ChangePassword(context.Background(), owner, user.ChangePasswordRequest{
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "An0therSecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Username: "jane.doe",
		Password: "An0therSecret",
	})
	assert.NoError(t, err)
}

func TestUpdateProfileAvatar(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), nil, registrationPayload())
	require.NoError(t, err)

	owner := &authz.Actor{ID: dto.ID, Role: authz.RoleUser}
	p, err := svc.UpdateProfile(context.Background(), owner, dto.ID, []byte(`{
		"avatar": "https://cdn.example.com/jane.png"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/jane.png", p.Avatar)
}
