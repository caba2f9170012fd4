package model

// QuizAttempt is one row per (user, course, topic), upserted on each
// completion. XPAwarded keeps the +10 XP grant at most once per topic.
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex:idx_attempt_user_course_topic;not null" json:"userId"`
	CourseName     string `gorm:"size:100;uniqueIndex:idx_attempt_user_course_topic;not null" json:"courseName"`
	TopicID        string `gorm:"size:50;uniqueIndex:idx_attempt_user_course_topic;not null" json:"topicId"`
	QuizTitle      string `gorm:"size:200" json:"quizTitle"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	XPAwarded      bool   `gorm:"default:false" json:"xpAwarded"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
