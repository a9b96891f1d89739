package mock

import (
	"context"

	"github.com/SketchShifter/tag_backend/internal/models"
	"github.com/SketchShifter/tag_backend/internal/repository"

	tmock "github.com/stretchr/testify/mock"
)

var (
	_ repository.TagRepository  = (*TagRepository)(nil)
	_ repository.UserRepository = (*UserRepository)(nil)
)

// TagRepository repository.TagRepository のモック
type TagRepository struct {
	tmock.Mock
}

func (m *TagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]models.Tag)
	return tags, args.Error(1)
}

func (m *TagRepository) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func (m *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *TagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *TagRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// UserRepository repository.UserRepository のモック
type UserRepository struct {
	tmock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
