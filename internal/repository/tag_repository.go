package repository

import (
	"context"
	"errors"

	"github.com/SketchShifter/tag_backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindByID(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindAll タグ一覧を取得（ID昇順）
func (r *tagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	// 0件でも JSON では [] にする
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// FindByID IDでタグを検索
func (r *tagRepository) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Create 新しいタグを作成
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrTagConflict
		}
		return err
	}
	return nil
}

// Update タグのラベルを更新
// MySQL は値が変わらない更新の RowsAffected を 0 で返すので、存在確認は呼び出し側で行う
func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id = ?", tag.ID).
		Update("tag", tag.Tag).Error
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrTagConflict
		}
		return err
	}
	return nil
}

// Delete タグを削除
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}
