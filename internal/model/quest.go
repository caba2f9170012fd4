package model

// Quest is an instantiated gamification template. Progress is clamped to
// [0,100]; Rewarded guards the one-time XP payout.
// swagger:model Quest
type Quest struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Slug        string `gorm:"size:50;not null" json:"slug"`
	Title       string `gorm:"size:200" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Progress    int    `gorm:"default:0" json:"progress"`
	Reward      int    `json:"reward"`
	Completed   bool   `gorm:"default:false" json:"completed"`
	Rewarded    bool   `gorm:"default:false" json:"rewarded"`
}

func (Quest) TableName() string {
	return "quests"
}
