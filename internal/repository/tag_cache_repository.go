package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SketchShifter/tag_backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TagListVersionKey タグ一覧キャッシュの世代番号キー
const TagListVersionKey = "tags:version"

// TagListCacheKey 世代番号ごとのタグ一覧キャッシュキー
// 書き込みは世代を進めるだけなので、書き込み前に読み込んだ一覧は古い世代のキーにしか保存されない
func TagListCacheKey(version int64) string {
	return fmt.Sprintf("tags:all:v%d", version)
}

// cachedTagRepository タグ一覧を Redis にキャッシュする TagRepository
type cachedTagRepository struct {
	inner  TagRepository
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewCachedTagRepository inner をラップしたキャッシュ付き TagRepository を作成
func NewCachedTagRepository(inner TagRepository, client *redis.Client, ttl time.Duration, log *zap.Logger) TagRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &cachedTagRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// FindAll キャッシュがあればそれを返し、なければ DB から読み込んで保存
func (r *cachedTagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	version, err := r.version(ctx)
	if err != nil {
		r.log.Warn("キャッシュ世代の取得に失敗しました", zap.Error(err))
		return r.inner.FindAll(ctx)
	}
	key := TagListCacheKey(version)

	payload, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tags []models.Tag
		if err := json.Unmarshal(payload, &tags); err == nil && tags != nil {
			return tags, nil
		}
		r.log.Warn("キャッシュの内容が不正です", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("キャッシュの読み込みに失敗しました", zap.Error(err))
	}

	tags, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(tags)
	if err == nil {
		err = r.client.Set(ctx, key, raw, r.ttl).Err()
	}
	if err != nil {
		r.log.Warn("キャッシュの書き込みに失敗しました", zap.Error(err))
	}

	return tags, nil
}

// version 現在の世代番号（未設定なら 0）
func (r *cachedTagRepository) version(ctx context.Context) (int64, error) {
	version, err := r.client.Get(ctx, TagListVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// FindByID キャッシュせずにそのまま委譲
func (r *cachedTagRepository) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	return r.inner.FindByID(ctx, id)
}

// Create タグを作成しキャッシュ世代を進める
func (r *cachedTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.inner.Create(ctx, tag); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update タグを更新しキャッシュ世代を進める
func (r *cachedTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if err := r.inner.Update(ctx, tag); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete タグを削除しキャッシュ世代を進める
func (r *cachedTagRepository) Delete(ctx context.Context, id uint) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTagRepository) invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, TagListVersionKey).Err(); err != nil {
		r.log.Warn("キャッシュ世代の更新に失敗しました", zap.Error(err))
	}
}
