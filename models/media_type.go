package models

// MediaType is the physical medium an Album is sold on (CD, vinyl, tape)
type MediaType struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}
