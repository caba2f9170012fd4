package model

// swagger:model ContentItem
type ContentItem struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Type        string `gorm:"size:30;index;not null" json:"type"`
	Topic       string `gorm:"size:50;index" json:"topic"`
	Description string `gorm:"size:500" json:"description"`
	URL         string `gorm:"size:255" json:"url"`
	DurationMin int    `json:"durationMin"`
}

func (ContentItem) TableName() string {
	return "contents"
}
