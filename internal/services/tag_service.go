package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SketchShifter/tag_backend/internal/models"
	"github.com/SketchShifter/tag_backend/internal/repository"
)

// ErrInvalidTag タグ名が空
var ErrInvalidTag = errors.New("タグ名は空にできません")

// TagService タグに関するサービスインターフェース
type TagService interface {
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindOne(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, name string) (*models.Tag, error)
	Update(ctx context.Context, id uint, name string) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
}

// tagService TagServiceの実装
type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService TagServiceを作成
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{
		tagRepo: tagRepo,
	}
}

// FindAll タグ一覧を取得
func (s *tagService) FindAll(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.FindAll(ctx)
}

// FindOne IDでタグを取得
func (s *tagService) FindOne(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.FindByID(ctx, id)
}

// Create 新しいタグを作成
func (s *tagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTag
	}

	tag := &models.Tag{Tag: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Update タグのラベルを変更
func (s *tagService) Update(ctx context.Context, id uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTag
	}

	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag.Tag == name {
		return tag, nil
	}

	tag.Tag = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete タグを削除
func (s *tagService) Delete(ctx context.Context, id uint) error {
	return s.tagRepo.Delete(ctx, id)
}
