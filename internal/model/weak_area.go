package model

// WeakArea counts repeated misses of the same question; cleared only by an
// explicit review action.
// swagger:model WeakArea
type WeakArea struct {
	BaseModel
	UserEmail    string `gorm:"size:100;index;not null" json:"userEmail"`
	CourseName   string `gorm:"size:100" json:"courseName"`
	TopicID      string `gorm:"size:50" json:"topicId"`
	TopicLabel   string `gorm:"size:200" json:"topicLabel"`
	QuestionText string `gorm:"size:500" json:"questionText"`
	WrongCount   int    `gorm:"default:1" json:"wrongCount"`
	Reviewed     bool   `gorm:"default:false" json:"reviewed"`
}

func (WeakArea) TableName() string {
	return "weak_areas"
}
