package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"recipebox/internal/common"
	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of repositories.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Current(ctx context.Context) (*models.SessionUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionUser), args.Error(1)
}

func (m *MockSessionRepository) SetCurrent(ctx context.Context, user models.SessionUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockRepo, mockSessions, testJWTSecret)

	// Successful registration stores a bcrypt hash, never the plaintext.
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "a@x.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")) == nil
	})).Return(nil).Once()

	user, err := authService.Register(ctx, "A", "a@x.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	mockRepo.AssertExpectations(t)

	// Missing fields fail validation before the repository is touched.
	_, err = authService.Register(ctx, "", "a@x.com", "password123")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = authService.Register(ctx, "A", "", "password123")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = authService.Register(ctx, "A", "a@x.com", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	// A duplicate email propagates unchanged.
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("%w: a@x.com", common.ErrDuplicateEmail)).Once()
	_, err = authService.Register(ctx, "A", "a@x.com", "password123")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockRepo, mockSessions, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{Name: "A", Email: "a@x.com", Password: string(hashedPassword)}

	// Successful login persists the session and issues a token.
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
	mockSessions.On("SetCurrent", mock.Anything, user.Session()).Return(nil).Once()

	token, loggedIn, err := authService.Login(ctx, "a@x.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", loggedIn.Email)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "A", claims["name"])
	mockRepo.AssertExpectations(t)
	mockSessions.AssertExpectations(t)

	// Wrong password: invalid credentials, session untouched.
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
	_, _, err = authService.Login(ctx, "a@x.com", "wrongpassword")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// Unknown user reads the same as a wrong password.
	mockRepo.On("FindByEmail", mock.Anything, "ghost@x.com").
		Return(nil, fmt.Errorf("%w: user with email ghost@x.com", common.ErrNotFound)).Once()
	_, _, err = authService.Login(ctx, "ghost@x.com", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockRepo, mockSessions, testJWTSecret)

	// Confirmation mismatch fails before the repository is touched.
	err := authService.ResetPassword(ctx, "a@x.com", "newpass1", "newpass2")
	assert.ErrorIs(t, err, common.ErrPasswordMismatch)

	// Missing fields fail validation.
	err = authService.ResetPassword(ctx, "a@x.com", "", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	// A successful reset stores a hash of the new password.
	mockRepo.On("UpdatePassword", mock.Anything, "a@x.com", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1")) == nil
	})).Return(nil).Once()
	err = authService.ResetPassword(ctx, "a@x.com", "newpass1", "newpass1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// An unknown email propagates the lookup miss.
	mockRepo.On("UpdatePassword", mock.Anything, "ghost@x.com", mock.AnythingOfType("string")).
		Return(fmt.Errorf("%w: user with email ghost@x.com", common.ErrNotFound)).Once()
	err = authService.ResetPassword(ctx, "ghost@x.com", "newpass1", "newpass1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockRepo, mockSessions, testJWTSecret)

	session := &models.SessionUser{Name: "A", Email: "a@x.com"}
	mockSessions.On("Current", mock.Anything).Return(session, nil).Once()

	current, err := authService.CurrentUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, session, current)

	mockSessions.On("Clear", mock.Anything).Return(nil).Once()
	assert.NoError(t, authService.Logout(ctx))
	mockSessions.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockRepo, mockSessions, testJWTSecret)

	// Valid token.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":  "A",
		"email": "a@x.com",
		"exp":   jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])

	// Garbage token.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Expired token.
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":  "A",
		"email": "a@x.com",
		"exp":   jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
