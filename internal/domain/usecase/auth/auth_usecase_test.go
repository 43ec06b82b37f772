package auth

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/finance-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func newMocks(t *testing.T) (*persistencemocks.MockUserRepository, *persistencemocks.MockSessionRepository, *coremocks.MockTimeProvider, *coremocks.MockLogger) {
	mockUserRepo := persistencemocks.NewMockUserRepository(t)
	mockSessionRepo := persistencemocks.NewMockSessionRepository(t)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedNow).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return mockUserRepo, mockSessionRepo, mockTime, mockLogger
}

func hashOf(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ana").Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "ana" &&
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")) == nil
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).Return(nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		user, err := service.Register(ctx, " ana ", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "ana", user.Username)
	})

	t.Run("Duplicate username from pre-check", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ana").Return(&entity.User{ID: 1, Username: "ana"}, nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.Register(ctx, "ana", "secret")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.True(t, errs.IsDuplicateUserError(err))
	})

	t.Run("Duplicate username from the unique constraint", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ana").Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.Register(ctx, "ana", "secret")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Blank credentials", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)
		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)

		_, err := service.Register(ctx, "   ", "secret")
		assert.ErrorIs(t, err, errs.ErrEmptyUsername)

		_, err = service.Register(ctx, "ana", "")
		assert.ErrorIs(t, err, errs.ErrEmptyPassword)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login issues a session", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ana").Return(&entity.User{
			ID:           1,
			Username:     "ana",
			PasswordHash: hashOf(t, "secret"),
		}, nil).Once()
		mockSessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(session *entity.Session) bool {
			return session.UserID == 1 && session.Token != "" &&
				session.ExpiresAt.Equal(fixedNow.Add(time.Hour))
		})).Return(nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		token, err := service.Authenticate(ctx, "ana", "secret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ana").Return(&entity.User{
			ID:           1,
			Username:     "ana",
			PasswordHash: hashOf(t, "secret"),
		}, nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.Authenticate(ctx, "ana", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Unknown username yields the same error as wrong password", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockUserRepo.EXPECT().GetByUsername(mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.Authenticate(ctx, "nobody", "secret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid session resolves to its user", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockSessionRepo.EXPECT().GetByToken(mock.Anything, "token-1").Return(&entity.Session{
			Token:     "token-1",
			UserID:    1,
			ExpiresAt: fixedNow.Add(time.Hour),
		}, nil).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "ana"}, nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		user, err := service.ResolveSession(ctx, "token-1")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
	})

	t.Run("Expired session is revoked and rejected", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockSessionRepo.EXPECT().GetByToken(mock.Anything, "stale").Return(&entity.Session{
			Token:     "stale",
			UserID:    1,
			ExpiresAt: fixedNow.Add(-time.Minute),
		}, nil).Once()
		mockSessionRepo.EXPECT().Delete(mock.Anything, "stale").Return(nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.ResolveSession(ctx, "stale")

		assert.ErrorIs(t, err, errs.ErrInvalidSession)
	})

	t.Run("Unknown token", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockSessionRepo.EXPECT().GetByToken(mock.Anything, "missing").Return(nil, errs.ErrInvalidSession).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.ResolveSession(ctx, "missing")

		assert.ErrorIs(t, err, errs.ErrInvalidSession)
	})

	t.Run("Blank token", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.ResolveSession(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidSession)
	})

	t.Run("Session pointing at a deleted user", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockSessionRepo.EXPECT().GetByToken(mock.Anything, "orphan").Return(&entity.Session{
			Token:     "orphan",
			UserID:    9,
			ExpiresAt: fixedNow.Add(time.Hour),
		}, nil).Once()
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		_, err := service.ResolveSession(ctx, "orphan")

		assert.ErrorIs(t, err, errs.ErrInvalidSession)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Revokes the session", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		mockSessionRepo.EXPECT().Delete(mock.Anything, "token-1").Return(nil).Once()

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		require.NoError(t, service.Logout(ctx, "token-1"))
	})

	t.Run("Blank token is a no-op", func(t *testing.T) {
		mockUserRepo, mockSessionRepo, mockTime, mockLogger := newMocks(t)

		service := NewAuthUseCase(mockUserRepo, mockSessionRepo, mockTime, mockLogger, time.Hour)
		require.NoError(t, service.Logout(ctx, ""))
	})
}
