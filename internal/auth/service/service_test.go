package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/cides/formadesk/internal/auth/domain"
	"github.com/cides/formadesk/internal/clock"
	"github.com/cides/formadesk/pkg/repository"
)

func newTestService(t *testing.T) (*Service, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	return &Service{
		log:         zap.NewNop(),
		clock:       fake,
		genID:       node,
		userrepo:    repository.ProvideStore[authdomain.User](db),
		sessionrepo: repository.ProvideStore[authdomain.Session](db),
	}, fake
}

func createUser(t *testing.T, svc *Service, email string) *authdomain.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), authdomain.CreateUserRequest{
		Email:    email,
		Password: "tres-secret-1",
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.CreateUser(context.Background(), authdomain.CreateUserRequest{
		Email:       " Marie@CIDES.fr ",
		Password:    "tres-secret-1",
		DisplayName: "Marie",
	})
	require.NoError(t, err)

	assert.Equal(t, "marie@cides.fr", user.Email)
	assert.Equal(t, "Marie", user.DisplayName)
	assert.Equal(t, authdomain.RoleStaff, user.Role)
	require.NotNil(t, user.PasswordHash)
	assert.NotContains(t, *user.PasswordHash, "tres-secret-1")
}

func TestCreateUserDefaultsDisplayName(t *testing.T) {
	svc, _ := newTestService(t)

	user := createUser(t, svc, "paul@cides.fr")
	assert.Equal(t, "paul", user.DisplayName)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	createUser(t, svc, "marie@cides.fr")

	_, err := svc.CreateUser(context.Background(), authdomain.CreateUserRequest{
		Email:    "MARIE@cides.fr",
		Password: "tres-secret-1",
	})
	assert.ErrorIs(t, err, authdomain.ErrUserExists)
}

func TestCreateUserRejectsWeakInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateUser(context.Background(), authdomain.CreateUserRequest{
		Email:    "not-an-email",
		Password: "tres-secret-1",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	_, err = svc.CreateUser(context.Background(), authdomain.CreateUserRequest{
		Email:    "marie@cides.fr",
		Password: "short",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	createUser(t, svc, "marie@cides.fr")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "marie@cides.fr",
		Password: "tres-secret-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, "marie@cides.fr", result.User.Email)
	assert.Equal(t,
		time.Date(2024, time.June, 8, 10, 0, 0, 0, time.UTC),
		result.ExpiresAt,
	)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	createUser(t, svc, "marie@cides.fr")

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "marie@cides.fr",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "nobody@cides.fr",
		Password: "tres-secret-1",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	svc, fake := newTestService(t)
	user := createUser(t, svc, "marie@cides.fr")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "marie@cides.fr",
		Password: "tres-secret-1",
	})
	require.NoError(t, err)

	fake.Advance(time.Hour)

	identity, err := svc.Authenticate(context.Background(), result.RawToken)
	require.NoError(t, err)

	assert.Equal(t, user.ID, identity.User.ID)
	assert.Equal(t, fake.Now(), identity.Session.LastSeenAt.UTC())
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, fake := newTestService(t)
	createUser(t, svc, "marie@cides.fr")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "marie@cides.fr",
		Password: "tres-secret-1",
	})
	require.NoError(t, err)

	fake.Advance(7*24*time.Hour + time.Minute)

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, authdomain.ErrSessionExpired)
}

func TestAuthenticateRevokedSession(t *testing.T) {
	svc, _ := newTestService(t)
	createUser(t, svc, "marie@cides.fr")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "marie@cides.fr",
		Password: "tres-secret-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RawToken))

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, authdomain.ErrSessionRevoked)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "bogus-token")
	assert.ErrorIs(t, err, authdomain.ErrInvalidSession)

	_, err = svc.Authenticate(context.Background(), "  ")
	assert.ErrorIs(t, err, authdomain.ErrInvalidSession)
}

func TestLogoutUnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Logout(context.Background(), "bogus-token")
	assert.ErrorIs(t, err, authdomain.ErrInvalidSession)
}
