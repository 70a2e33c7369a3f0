package impl

import (
	"context"
	"log/slog"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, extended bool) (string, error) {
	args := m.Called(userID, extended)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

type userServiceMocks struct {
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func newTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		userRepo:     &mockUserRepository{},
		hasher:       &mockPasswordHasher{},
		tokenService: &mockTokenService{},
	}
	svc := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return svc, mocks
}

func TestUserService_Register_Success(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.On("Hash", "secret1").Return("hashed-secret", nil)
	mocks.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Ann" && u.Email == "ann@example.com" && u.PasswordHash == "hashed-secret"
	})).Return(nil)

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ann@example.com", out.User.Email)
	// The plaintext must never be stored.
	assert.NotEqual(t, "secret1", out.User.PasswordHash)

	mocks.userRepo.AssertExpectations(t)
	mocks.hasher.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com"}
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").Return(existing, nil)

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	// The duplicate must be rejected before any hashing or insert.
	mocks.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	mocks.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_LosesInsertRace(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	// The pre-check sees no user, but a concurrent registration commits first
	// and the insert hits the unique constraint.
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.On("Hash", "secret1").Return("hashed-secret", nil)
	mocks.userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_StoreFailure(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.On("Hash", "secret1").Return("hashed-secret", nil)
	mocks.userRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	out, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	})
	assert.Nil(t, out)
	require.Error(t, err)
	// An infrastructure fault is not a duplicate rejection.
	assert.NotErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "hashed-secret",
	}
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").Return(user, nil)
	mocks.hasher.On("Check", "secret1", "hashed-secret").Return(true)
	mocks.tokenService.On("Issue", user.ID, false).Return("signed-token", nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ann@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "Ann", out.User.Name)

	mocks.tokenService.AssertExpectations(t)
}

func TestUserService_Login_RememberMeExtendsSession(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hashed-secret"}
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").Return(user, nil)
	mocks.hasher.On("Check", "secret1", "hashed-secret").Return(true)
	mocks.tokenService.On("Issue", user.ID, true).Return("signed-token", nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:      "ann@example.com",
		Password:   "secret1",
		RememberMe: true,
	})
	require.NoError(t, err)

	mocks.tokenService.AssertExpectations(t)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "secret1",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	mocks.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hashed-secret"}
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").Return(user, nil)
	mocks.hasher.On("Check", "wrong", "hashed-secret").Return(false)

	out, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ann@example.com",
		Password: "wrong",
	})
	assert.Nil(t, out)
	// A known user with a bad password is an invalid-password rejection,
	// never an unknown-user one.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)

	mocks.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_Login_TokenIssueFailure(t *testing.T) {
	svc, mocks := newTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hashed-secret"}
	mocks.userRepo.On("FindByEmail", ctx, "ann@example.com").Return(user, nil)
	mocks.hasher.On("Check", "secret1", "hashed-secret").Return(true)
	mocks.tokenService.On("Issue", user.ID, false).Return("", errors.New("signing failed"))

	out, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ann@example.com",
		Password: "secret1",
	})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidPassword)
}
