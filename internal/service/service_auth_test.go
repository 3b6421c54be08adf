package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/mock"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/models"
)

func testServerApp() config.ServerApp {
	return config.ServerApp{
		ContainerID:      testContainerID,
		TokenSignKey:     "sign-key",
		TokenIssuer:      "go-zone-keeper-test",
		TokenDuration:    time.Hour,
		HashKey:          "hash-key",
		PasswordHashCost: bcrypt.MinCost,
		ChangesPageSize:  2,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testServerApp(), logger.Nop()), repo
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			assert.Empty(t, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
			user.UserID = 7
			return user, nil
		})

	got, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for _, user := range []models.User{{Login: "alice"}, {Password: "secret"}, {}} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 3, Login: "alice", PasswordHash: hashed(t, "secret")}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "correct password", password: "secret"},
		{name: "wrong password", password: "nope", wantErr: ErrWrongPassword},
		{name: "unknown login", password: "secret", findErr: store.ErrNoUserWasFound, wantErr: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			if tt.findErr != nil {
				repo.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(models.User{}, tt.findErr)
			} else {
				repo.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(stored, nil)
			}

			got, err := svc.Login(context.Background(), models.User{Login: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), got.UserID)
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 5, Login: "bob"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
	assert.Equal(t, "bob", parsed.Login)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other := testServerApp()
	other.TokenSignKey = "another-key"
	foreign, err := NewAuthService(nil, other, logger.Nop()).CreateToken(context.Background(), models.User{UserID: 1, Login: "eve"})
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_CreateToken_Misconfigured(t *testing.T) {
	cfg := testServerApp()
	cfg.TokenDuration = 0

	_, err := NewAuthService(nil, cfg, logger.Nop()).CreateToken(context.Background(), models.User{UserID: 1, Login: "alice"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
