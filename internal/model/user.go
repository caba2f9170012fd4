package model

type LearningStyle string

const (
	Visual      LearningStyle = "Visual"
	Aural       LearningStyle = "Aural"
	ReadWrite   LearningStyle = "ReadWrite"
	Kinesthetic LearningStyle = "Kinesthetic"
	Multimodal  LearningStyle = "Multimodal"
)

// swagger:model User
type User struct {
	BaseModel
	Name          string        `gorm:"size:100;not null" json:"name"`
	Email         string        `gorm:"size:100;unique;not null" json:"email"`
	Password      string        `gorm:"size:100;not null" json:"-"`
	XP            int           `gorm:"default:0" json:"xp"`
	Avatar        string        `gorm:"size:255" json:"avatar"`
	VarkCompleted bool          `gorm:"default:false" json:"varkCompleted"`
	LearningStyle LearningStyle `gorm:"size:20" json:"learningStyle"`
}

func (User) TableName() string {
	return "users"
}
