package service

import (
	"context"
	"testing"
	"time"

	"cinehub/internal/config"
	"cinehub/internal/microservices/http-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register("testuser", "password123", "test@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	existingUser := &models.User{Username: "testuser"}
	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(existingUser, nil)

	user, err := authService.Register("testuser", "password123", "test@example.com")

	assert.Error(t, err)
	assert.Equal(t, ErrNameInUse, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	existingUser := &models.User{Email: "test@example.com"}
	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(existingUser, nil)

	user, err := authService.Register("testuser", "password123", "test@example.com")

	assert.Error(t, err)
	assert.Equal(t, ErrEmailInUse, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     "user",
	}

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, returnedUser, err := authService.Login("testuser", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, user.Username, returnedUser.Username)
	mockUserRepo.AssertExpectations(t)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestLogin_InvalidPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Username: "testuser",
		Password: string(hashedPassword),
	}

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)

	accessToken, refreshToken, returnedUser, err := authService.Login("testuser", "wrongpassword")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.Nil(t, returnedUser)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByUsername", mock.Anything, "nonexistent").Return(nil, gorm.ErrRecordNotFound)

	accessToken, refreshToken, user, err := authService.Login("nonexistent", "password123")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Username: "testuser",
		Password: string(hashedPassword),
		Role:     "admin",
	}

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, _, _, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(accessToken)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "testuser", claims.UserName)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	claims := jwt.MapClaims{
		"user_id":  "user-id",
		"username": "testuser",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("test-secret"))

	validatedClaims, err := authService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
	assert.Nil(t, validatedClaims)
}

func TestValidateToken_Garbage(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	validatedClaims, err := authService.ValidateToken("invalid.token.here")

	assert.Error(t, err)
	assert.Nil(t, validatedClaims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	claims := jwt.MapClaims{
		"user_id":  "user-id",
		"username": "testuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("a-different-secret"))

	validatedClaims, err := authService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, validatedClaims)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &models.User{ID: "user-id", Username: "testuser"}

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-token").Return(stored, nil)
	mockUserRepo.On("FindByID", mock.Anything, "user-id").Return(user, nil)

	accessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	mockRefreshTokenRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestRefreshAccessToken_Revoked(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-token").Return(stored, nil)

	accessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
	assert.Empty(t, accessToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-token").Return(stored, nil)
	mockRefreshTokenRepo.On("Delete", mock.Anything, "token-id").Return(nil)

	accessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.Error(t, err)
	assert.Equal(t, ErrExpiredToken, err)
	assert.Empty(t, accessToken)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestRevokeToken_UnknownTokenIsNoop(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := authService.RevokeToken("missing")

	assert.NoError(t, err)
	mockRefreshTokenRepo.AssertExpectations(t)
}
