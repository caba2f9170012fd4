package model

// VarkResponse holds one questionnaire submission per user, overwritten on
// resubmission.
// swagger:model VarkResponse
type VarkResponse struct {
	BaseModel
	UserEmail        string            `gorm:"size:100;unique;not null" json:"userEmail"`
	Responses        map[string]string `gorm:"serializer:json" json:"responses"`
	VisualScore      int               `json:"visualScore"`
	AuralScore       int               `json:"auralScore"`
	ReadWriteScore   int               `json:"readWriteScore"`
	KinestheticScore int               `json:"kinestheticScore"`
}

func (VarkResponse) TableName() string {
	return "vark_responses"
}
