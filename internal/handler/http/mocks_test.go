package http

import (
	"context"
	"testing"

	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	signInFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, rawToken string) (int64, error)
	requireRoleFn  func(ctx context.Context, authorizationHeader string, role models.Role) (models.Token, error)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	return m.signInFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	return m.authenticateFn(ctx, rawToken)
}

func (m *mockAuthService) RequireRole(ctx context.Context, authorizationHeader string, role models.Role) (models.Token, error) {
	return m.requireRoleFn(ctx, authorizationHeader, role)
}

// ─────────────────────────────────────────────
// Mock service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	signUpFn        func(ctx context.Context, user models.User, password string, image *service.ImageUpload) (models.User, error)
	profileFn       func(ctx context.Context, userID int64) (models.User, string, error)
	updateProfileFn func(ctx context.Context, userID int64, username string, image *service.ImageUpload) (models.User, string, error)
	listUsersFn     func(ctx context.Context) ([]models.User, error)
	deleteUserFn    func(ctx context.Context, userID int64) error
	ensureAdminFn   func(ctx context.Context) error
}

func (m *mockUserService) SignUp(ctx context.Context, user models.User, password string, image *service.ImageUpload) (models.User, error) {
	return m.signUpFn(ctx, user, password, image)
}

func (m *mockUserService) Profile(ctx context.Context, userID int64) (models.User, string, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, username string, image *service.ImageUpload) (models.User, string, error) {
	return m.updateProfileFn(ctx, userID, username, image)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockUserService) EnsureAdmin(ctx context.Context) error {
	if m.ensureAdminFn != nil {
		return m.ensureAdminFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock service.MoveInService
// ─────────────────────────────────────────────

type mockMoveInService struct {
	createFn  func(ctx context.Context, movein models.MoveIn, userID int64) (models.MoveIn, error)
	getFn     func(ctx context.Context, id int64) (models.MoveIn, error)
	listFn    func(ctx context.Context, nameFilter string) ([]models.MoveIn, error)
	updateFn  func(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error)
	approveFn func(ctx context.Context, id int64) (models.MoveIn, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockMoveInService) Create(ctx context.Context, movein models.MoveIn, userID int64) (models.MoveIn, error) {
	return m.createFn(ctx, movein, userID)
}

func (m *mockMoveInService) Get(ctx context.Context, id int64) (models.MoveIn, error) {
	return m.getFn(ctx, id)
}

func (m *mockMoveInService) List(ctx context.Context, nameFilter string) ([]models.MoveIn, error) {
	return m.listFn(ctx, nameFilter)
}

func (m *mockMoveInService) Update(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockMoveInService) Approve(ctx context.Context, id int64) (models.MoveIn, error) {
	return m.approveFn(ctx, id)
}

func (m *mockMoveInService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, svcs service.Services) *Handler {
	t.Helper()
	return NewHandler(&svcs, logger.Nop())
}
