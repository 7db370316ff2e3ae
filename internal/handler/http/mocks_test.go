package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	return m.registerUserFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return stubToken("signed.jwt.token"), nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, update models.UserUpdate) (models.User, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, update)
}

// ─────────────────────────────────────────────
// Mock PasswordService
// ─────────────────────────────────────────────

type mockPasswordService struct {
	changePasswordFn func(ctx context.Context, userID int64, currentPassword, newPassword string) (models.User, error)
	forgotPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn  func(ctx context.Context, resetSecret, newPassword string) (models.User, error)
}

func (m *mockPasswordService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.User, error) {
	return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (m *mockPasswordService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockPasswordService) ResetPassword(ctx context.Context, resetSecret, newPassword string) (models.User, error) {
	return m.resetPasswordFn(ctx, resetSecret, newPassword)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks
// stay unset and panic on use, which surfaces unexpected calls in tests.
func newTestHandler(t *testing.T, auth service.AuthService, profile service.ProfileService, password service.PasswordService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:     auth,
		ProfileService:  profile,
		PasswordService: password,
	}, logger.Nop())
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, UserID: 1}
}

// sessionCookie digs the session cookie out of a recorded response.
func sessionCookie(res *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range res.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
