package models

import "gorm.io/gorm"

type Artist struct {
	ID      uint64 `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(255);not null"`
	GenreID uint64 `gorm:"not null"`
	Genre   Genre  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Members []Member `gorm:"many2many:artist_members;"`
	Image   string `gorm:"type:varchar(500)"`
	Slug    string `gorm:"type:varchar(100);index:uniq_artist_slug,unique;not null"`
}

func ArtistBySlug(tx *gorm.DB, slug string) (a Artist, err error) {
	err = tx.Preload("Genre").Preload("Members").First(&a, "slug = ?", slug).Error
	return
}

func (a *Artist) AbsoluteURL() string {
	return "/" + a.Slug + "/"
}

func (a *Artist) MediaKind() string {
	return "artist"
}

func (a *Artist) MediaValue(field string) (string, bool) {
	if field == "slug" {
		return a.Slug, true
	}
	return "", false
}
