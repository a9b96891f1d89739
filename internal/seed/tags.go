package seed

import (
	"github.com/SketchShifter/tag_backend/internal/models"
)

// Tags 初期データ／テスト用のタグ
var Tags = []models.Tag{
	{ID: 1, Tag: "angularjs"},
	{ID: 2, Tag: "reactjs"},
	{ID: 3, Tag: "vuejs"},
	{ID: 4, Tag: "svelte"},
	{ID: 5, Tag: "golang"},
}

// CloneTags Tags のコピーを返す
func CloneTags() []models.Tag {
	tags := make([]models.Tag, len(Tags))
	copy(tags, Tags)
	return tags
}
