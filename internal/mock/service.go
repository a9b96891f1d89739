package mock

import (
	"context"

	"github.com/SketchShifter/tag_backend/internal/models"
	"github.com/SketchShifter/tag_backend/internal/services"

	tmock "github.com/stretchr/testify/mock"
)

var (
	_ services.TagService    = (*TagService)(nil)
	_ services.AuthService   = (*AuthService)(nil)
	_ services.HealthService = (*HealthService)(nil)
)

// TagService services.TagService のモック
type TagService struct {
	tmock.Mock
}

func (m *TagService) FindAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]models.Tag)
	return tags, args.Error(1)
}

func (m *TagService) FindOne(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func (m *TagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func (m *TagService) Update(ctx context.Context, id uint, name string) (*models.Tag, error) {
	args := m.Called(ctx, id, name)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func (m *TagService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// AuthService services.AuthService のモック
type AuthService struct {
	tmock.Mock
}

func (m *AuthService) Register(ctx context.Context, email, password, username string) (*models.User, string, error) {
	args := m.Called(ctx, email, password, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *AuthService) ValidateToken(tokenString string) (*services.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*services.Claims)
	return claims, args.Error(1)
}

func (m *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

// HealthService services.HealthService のモック
type HealthService struct {
	tmock.Mock
}

func (m *HealthService) GetStatus(ctx context.Context) services.HealthStatus {
	return m.Called(ctx).Get(0).(services.HealthStatus)
}
