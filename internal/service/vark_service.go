package service

import (
	"errors"

	"gorm.io/gorm"

	"learnpath_backend/internal/adaptive"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
)

type VarkService struct {
	VarkRepo repository.VarkRepository
	UserRepo repository.UserRepository
}

func NewVarkService(varkRepo repository.VarkRepository, userRepo repository.UserRepository) *VarkService {
	return &VarkService{
		VarkRepo: varkRepo,
		UserRepo: userRepo,
	}
}

// VarkResult is the classification returned to the client.
type VarkResult struct {
	LearningStyle model.LearningStyle `json:"learningStyle"`
	Scores        adaptive.VarkScores `json:"scores"`
}

// Submit validates the 16-answer questionnaire, classifies it, overwrites
// any earlier submission and updates the user's profile.
func (s *VarkService) Submit(user *model.User, responses map[string]string) (*VarkResult, error) {
	if err := adaptive.ValidateVarkResponses(responses); err != nil {
		return nil, err
	}

	scores, style := adaptive.ClassifyVark(responses)

	record, err := s.VarkRepo.FindByEmail(user.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = &model.VarkResponse{UserEmail: user.Email}
	} else if err != nil {
		return nil, err
	}

	record.Responses = responses
	record.VisualScore = scores.Visual
	record.AuralScore = scores.Aural
	record.ReadWriteScore = scores.ReadWrite
	record.KinestheticScore = scores.Kinesthetic
	if err := s.VarkRepo.Save(record); err != nil {
		return nil, err
	}

	user.VarkCompleted = true
	user.LearningStyle = style
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return &VarkResult{LearningStyle: style, Scores: scores}, nil
}
