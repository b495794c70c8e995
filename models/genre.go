package models

import "gorm.io/gorm"

type Genre struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);not null"`
	Slug string `gorm:"type:varchar(50);index:uniq_genre_slug,unique;not null"`
}

func GenreBySlug(tx *gorm.DB, slug string) (g Genre, err error) {
	err = tx.First(&g, "slug = ?", slug).Error
	return
}
