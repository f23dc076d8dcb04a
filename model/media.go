package model

import "time"

const (
	MediaKindImage     = "image"
	MediaKindThumbnail = "thumbnail"
)

// Media is one stored image slot of a project: either the singular
// thumbnail or a member of the gallery. External records point at a
// third-party URL and hold no object in the bucket.
type Media struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProjectID uint64  `gorm:"column:project_id;not null;index" json:"project_id"`
	Project   Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Kind string `gorm:"column:kind;type:varchar(20);not null;index" json:"kind"`

	URL     string `gorm:"column:url;size:2048;not null" json:"url"`
	AltText string `gorm:"column:alt_text;size:512;not null;default:''" json:"alt_text"`

	External bool `gorm:"column:external;not null;default:false" json:"external"`

	// Bytes charged against the project quota; 0 for external records.
	Size int64 `gorm:"column:size;not null;default:0" json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Media) TableName() string {
	return "media"
}
