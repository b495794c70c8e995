package models

// Member is a musician that can play in one or more Artists (bands)
type Member struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"type:varchar(255);not null"`
	Image string `gorm:"type:varchar(500)"`
	Slug  string `gorm:"type:varchar(100);index:uniq_member_slug,unique;not null"`
}

func (m *Member) MediaKind() string {
	return "member"
}

func (m *Member) MediaValue(field string) (string, bool) {
	if field == "slug" {
		return m.Slug, true
	}
	return "", false
}
