package service

import (
	"errors"

	"gorm.io/gorm"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/monitoring"
)

const quizTopicXP = 10

// WrongQuestion is reported by the client for each missed question.
type WrongQuestion struct {
	QuestionText string `json:"questionText"`
	TopicLabel   string `json:"topicLabel"`
}

// QuizCompletion is one finished quiz from the client.
type QuizCompletion struct {
	CourseName     string          `json:"courseName" binding:"required"`
	TopicID        string          `json:"topicId" binding:"required"`
	QuizTitle      string          `json:"quizTitle"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	WrongQuestions []WrongQuestion `json:"wrongQuestions"`
}

// QuizResult reports what the completion changed.
type QuizResult struct {
	XPGained bool `json:"xpGained"`
	XPAmount int  `json:"xpAmount"`
	TotalXP  int  `json:"totalXp"`
}

type QuizService struct {
	AttemptRepo  repository.QuizAttemptRepository
	WeakAreaRepo repository.WeakAreaRepository
	UserRepo     repository.UserRepository
	QuestSvc     *QuestService
}

func NewQuizService(attemptRepo repository.QuizAttemptRepository, weakAreaRepo repository.WeakAreaRepository, userRepo repository.UserRepository, questSvc *QuestService) *QuizService {
	return &QuizService{
		AttemptRepo:  attemptRepo,
		WeakAreaRepo: weakAreaRepo,
		UserRepo:     userRepo,
		QuestSvc:     questSvc,
	}
}

// CompleteQuiz upserts the (user, course, topic) attempt, grants the topic
// XP at most once, and records every missed question as a weak area.
// The awarded check is read-then-write without a transaction; two racing
// completions of the same topic can in principle both grant XP.
func (s *QuizService) CompleteQuiz(user *model.User, completion *QuizCompletion) (*QuizResult, error) {
	attempt, err := s.AttemptRepo.FindByUserCourseTopic(user.ID, completion.CourseName, completion.TopicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attempt = &model.QuizAttempt{
			UserID:     user.ID,
			CourseName: completion.CourseName,
			TopicID:    completion.TopicID,
		}
	} else if err != nil {
		return nil, err
	}

	attempt.QuizTitle = completion.QuizTitle
	attempt.Score = completion.Score
	attempt.TotalQuestions = completion.TotalQuestions

	result := &QuizResult{TotalXP: user.XP}
	if !attempt.XPAwarded {
		attempt.XPAwarded = true
		user.XP += quizTopicXP
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
		monitoring.XPAwarded.Add(float64(quizTopicXP))
		result.XPGained = true
		result.XPAmount = quizTopicXP
		result.TotalXP = user.XP
	}

	if err := s.AttemptRepo.Save(attempt); err != nil {
		return nil, err
	}

	for _, wq := range completion.WrongQuestions {
		if err := s.recordWeakArea(user.Email, completion, wq); err != nil {
			return nil, err
		}
	}

	if s.QuestSvc != nil {
		s.QuestSvc.AdvanceQuizQuests(user)
	}

	return result, nil
}

func (s *QuizService) recordWeakArea(email string, completion *QuizCompletion, wq WrongQuestion) error {
	area, err := s.WeakAreaRepo.FindByQuestion(email, completion.CourseName, completion.TopicID, wq.QuestionText)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.WeakAreaRepo.Save(&model.WeakArea{
			UserEmail:    email,
			CourseName:   completion.CourseName,
			TopicID:      completion.TopicID,
			TopicLabel:   wq.TopicLabel,
			QuestionText: wq.QuestionText,
			WrongCount:   1,
		})
	} else if err != nil {
		return err
	}

	area.WrongCount++
	area.Reviewed = false
	return s.WeakAreaRepo.Save(area)
}
