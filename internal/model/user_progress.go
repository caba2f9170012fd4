package model

// UserProgress mirrors the per-user unlock state. Both node sets only ever
// grow; there is no un-completion operation.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID         uint     `gorm:"unique;not null" json:"userId"`
	Theta          float64  `json:"theta"`
	CompletedNodes []string `gorm:"serializer:json" json:"completedNodes"`
	UnlockedNodes  []string `gorm:"serializer:json" json:"unlockedNodes"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
