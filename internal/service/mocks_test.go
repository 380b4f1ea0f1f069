package service

import (
	"context"

	"github.com/sunjoo-dev/movein-registry/internal/blob"
	"github.com/sunjoo-dev/movein-registry/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	getByIDFn        func(ctx context.Context, userID int64) (models.User, error)
	findFirstAdminFn func(ctx context.Context) (models.User, error)
	listFn           func(ctx context.Context) ([]models.User, error)
	updateUsernameFn func(ctx context.Context, userID int64, username string) error
	deleteFn         func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindFirstAdmin(ctx context.Context) (models.User, error) {
	if m.findFirstAdminFn != nil {
		return m.findFirstAdminFn(ctx)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUsername(ctx context.Context, userID int64, username string) error {
	if m.updateUsernameFn != nil {
		return m.updateUsernameFn(ctx, userID, username)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MoveInRepository
// ─────────────────────────────────────────────

type mockMoveInRepository struct {
	createFn  func(ctx context.Context, movein models.MoveIn) (models.MoveIn, error)
	getFn     func(ctx context.Context, id int64) (models.MoveIn, error)
	listFn    func(ctx context.Context, nameFilter string) ([]models.MoveIn, error)
	updateFn  func(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error)
	approveFn func(ctx context.Context, id int64) (models.MoveIn, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockMoveInRepository) CreateMoveIn(ctx context.Context, movein models.MoveIn) (models.MoveIn, error) {
	if m.createFn != nil {
		return m.createFn(ctx, movein)
	}
	return movein, nil
}

func (m *mockMoveInRepository) GetMoveIn(ctx context.Context, id int64) (models.MoveIn, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.MoveIn{}, nil
}

func (m *mockMoveInRepository) ListMoveIns(ctx context.Context, nameFilter string) ([]models.MoveIn, error) {
	if m.listFn != nil {
		return m.listFn(ctx, nameFilter)
	}
	return nil, nil
}

func (m *mockMoveInRepository) UpdateMoveIn(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.MoveIn{}, nil
}

func (m *mockMoveInRepository) ApproveMoveIn(ctx context.Context, id int64) (models.MoveIn, error) {
	if m.approveFn != nil {
		return m.approveFn(ctx, id)
	}
	return models.MoveIn{}, nil
}

func (m *mockMoveInRepository) DeleteMoveIn(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.FileRepository
// ─────────────────────────────────────────────

type mockFileRepository struct {
	createFn       func(ctx context.Context, file models.File) (models.File, error)
	findByUserFn   func(ctx context.Context, userID int64) (models.File, error)
	deleteByUserFn func(ctx context.Context, userID int64) error
}

func (m *mockFileRepository) CreateFile(ctx context.Context, file models.File) (models.File, error) {
	if m.createFn != nil {
		return m.createFn(ctx, file)
	}
	return file, nil
}

func (m *mockFileRepository) FindFileByUserID(ctx context.Context, userID int64) (models.File, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID)
	}
	return models.File{}, nil
}

func (m *mockFileRepository) DeleteFilesByUserID(ctx context.Context, userID int64) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: blob.ObjectStorage
// ─────────────────────────────────────────────

type mockObjectStorage struct {
	uploadFn func(ctx context.Context, originalName string, data []byte) (blob.StoredObject, error)
	deleteFn func(ctx context.Context, objectURL string) error
}

func (m *mockObjectStorage) Upload(ctx context.Context, originalName string, data []byte) (blob.StoredObject, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, originalName, data)
	}
	return blob.StoredObject{}, nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, objectURL string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, objectURL)
	}
	return nil
}
