package models

// Tag タグモデル
type Tag struct {
	ID  uint   `json:"id" gorm:"primaryKey"`
	Tag string `json:"tag" gorm:"type:varchar(255);uniqueIndex;not null"`
}

// TableName テーブル名
func (Tag) TableName() string {
	return "tags"
}
