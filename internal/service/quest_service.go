package service

import (
	"go.uber.org/zap"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
)

// questTemplate is one of the fixed gamification quests, instantiated per
// user on first listing.
type questTemplate struct {
	Slug        string
	Title       string
	Description string
	Reward      int
	// perQuiz is how much progress one quiz completion contributes; zero
	// means the quest is advanced by other events.
	perQuiz int
}

var questTemplates = []questTemplate{
	{Slug: "first-steps", Title: "First Steps", Description: "Complete your first quiz", Reward: 20, perQuiz: 100},
	{Slug: "quiz-streak", Title: "Quiz Streak", Description: "Complete five quizzes", Reward: 50, perQuiz: 20},
	{Slug: "deep-diver", Title: "Deep Diver", Description: "Complete ten quizzes", Reward: 100, perQuiz: 10},
	{Slug: "know-thyself", Title: "Know Thyself", Description: "Finish the learning style questionnaire", Reward: 30},
	{Slug: "trailblazer", Title: "Trailblazer", Description: "Complete a curriculum topic", Reward: 40},
}

type QuestService struct {
	QuestRepo repository.QuestRepository
	UserRepo  repository.UserRepository
}

func NewQuestService(questRepo repository.QuestRepository, userRepo repository.UserRepository) *QuestService {
	return &QuestService{
		QuestRepo: questRepo,
		UserRepo:  userRepo,
	}
}

// List returns the user's quests, instantiating any missing templates.
func (s *QuestService) List(userID uint) ([]model.Quest, error) {
	quests, err := s.QuestRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(quests))
	for _, q := range quests {
		have[q.Slug] = true
	}

	for _, t := range questTemplates {
		if have[t.Slug] {
			continue
		}
		quest := model.Quest{
			UserID:      userID,
			Slug:        t.Slug,
			Title:       t.Title,
			Description: t.Description,
			Reward:      t.Reward,
		}
		if err := s.QuestRepo.Save(&quest); err != nil {
			return nil, err
		}
		quests = append(quests, quest)
	}

	return quests, nil
}

// UpdateProgress sets a quest's progress, clamped to [0,100]. Hitting 100
// marks it completed and pays the XP reward exactly once. A quest id that
// does not exist or belongs to another user reads as not found.
func (s *QuestService) UpdateProgress(user *model.User, questID uint, progress int) (*model.Quest, error) {
	quest, err := s.QuestRepo.FindByID(questID)
	if err != nil || quest.UserID != user.ID {
		return nil, util.ErrQuestNotFound
	}
	return s.apply(user, quest, progress)
}

// Advance moves a quest forward by delta points of progress; internal hook
// for quiz and questionnaire events.
func (s *QuestService) Advance(user *model.User, slug string, delta int) (*model.Quest, error) {
	if _, err := s.List(user.ID); err != nil {
		return nil, err
	}

	quest, err := s.QuestRepo.FindByUserSlug(user.ID, slug)
	if err != nil {
		return nil, util.ErrQuestNotFound
	}
	return s.apply(user, quest, quest.Progress+delta)
}

func (s *QuestService) apply(user *model.User, quest *model.Quest, progress int) (*model.Quest, error) {
	if quest.Completed {
		return quest, nil
	}

	quest.Progress = progress
	if quest.Progress >= 100 {
		quest.Progress = 100
		quest.Completed = true
	}
	if quest.Progress < 0 {
		quest.Progress = 0
	}

	if quest.Completed && !quest.Rewarded {
		quest.Rewarded = true
		user.XP += quest.Reward
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
		monitoring.XPAwarded.Add(float64(quest.Reward))
	}

	if err := s.QuestRepo.Save(quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// AdvanceQuizQuests bumps every quiz-driven quest after a completion.
// Failures are logged; quest bookkeeping never fails a quiz submission.
func (s *QuestService) AdvanceQuizQuests(user *model.User) {
	for _, t := range questTemplates {
		if t.perQuiz == 0 {
			continue
		}
		if _, err := s.Advance(user, t.Slug, t.perQuiz); err != nil {
			logger.Log.Warn("quest advance failed",
				zap.String("slug", t.Slug), zap.Error(err))
		}
	}
}
