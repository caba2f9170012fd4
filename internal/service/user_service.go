package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

const (
	leaderboardSize     = 10
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 30 * time.Second
)

type UserService struct {
	UserRepo     repository.UserRepository
	AttemptRepo  repository.QuizAttemptRepository
	WeakAreaRepo repository.WeakAreaRepository
	Redis        *redis.Client
}

func NewUserService(userRepo repository.UserRepository, attemptRepo repository.QuizAttemptRepository, weakAreaRepo repository.WeakAreaRepository, rdb *redis.Client) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		AttemptRepo:  attemptRepo,
		WeakAreaRepo: weakAreaRepo,
		Redis:        rdb,
	}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// LeaderboardEntry is one public row; emails stay private.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Avatar string `json:"avatar"`
}

// Leaderboard returns the top users by XP, briefly cached when Redis is
// configured.
func (s *UserService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var cached []LeaderboardEntry
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	users, err := s.UserRepo.Leaderboard(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			Name:   u.Name,
			XP:     u.XP,
			Avatar: u.Avatar,
		})
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, raw, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

// TopicInsight aggregates a user's misses within one topic.
type TopicInsight struct {
	TopicID    string `json:"topicId"`
	TopicLabel string `json:"topicLabel"`
	CourseName string `json:"courseName"`
	Questions  int    `json:"questions"`
	WrongTotal int    `json:"wrongTotal"`
}

// Insights is the study-record summary for the dashboard: overall quiz
// figures plus weak areas rolled up per topic, weakest first.
type Insights struct {
	TotalQuizzes   int            `json:"totalQuizzes"`
	AverageScore   float64        `json:"averageScore"`
	TotalXP        int            `json:"totalXp"`
	CoursesTouched int            `json:"coursesTouched"`
	WeakTopics     []TopicInsight `json:"weakTopics"`
}

func (s *UserService) Insights(user *model.User) (*Insights, error) {
	attempts, err := s.AttemptRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	areas, err := s.WeakAreaRepo.ListByEmail(user.Email)
	if err != nil {
		return nil, err
	}

	insights := &Insights{
		TotalQuizzes: len(attempts),
		TotalXP:      user.XP,
		WeakTopics:   []TopicInsight{},
	}

	courses := make(map[string]bool)
	scoreSum, questionSum := 0, 0
	for _, a := range attempts {
		courses[a.CourseName] = true
		scoreSum += a.Score
		questionSum += a.TotalQuestions
	}
	insights.CoursesTouched = len(courses)
	if questionSum > 0 {
		insights.AverageScore = float64(scoreSum) / float64(questionSum) * 100
	}

	byTopic := make(map[string]int)
	for _, a := range areas {
		key := a.CourseName + "/" + a.TopicID
		if idx, ok := byTopic[key]; ok {
			insights.WeakTopics[idx].Questions++
			insights.WeakTopics[idx].WrongTotal += a.WrongCount
			continue
		}
		byTopic[key] = len(insights.WeakTopics)
		insights.WeakTopics = append(insights.WeakTopics, TopicInsight{
			TopicID:    a.TopicID,
			TopicLabel: a.TopicLabel,
			CourseName: a.CourseName,
			Questions:  1,
			WrongTotal: a.WrongCount,
		})
	}
	sort.SliceStable(insights.WeakTopics, func(i, j int) bool {
		return insights.WeakTopics[i].WrongTotal > insights.WeakTopics[j].WrongTotal
	})

	return insights, nil
}

// UpdateProfile changes the mutable profile fields; empty values leave the
// current ones in place.
func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// QuestionStat is one frequently-missed question.
type QuestionStat struct {
	QuestionText string `json:"questionText"`
	TopicLabel   string `json:"topicLabel"`
	CourseName   string `json:"courseName"`
	WrongCount   int    `json:"wrongCount"`
	Reviewed     bool   `json:"reviewed"`
}

// QuestionStats lists the user's missed questions, hardest first.
func (s *UserService) QuestionStats(userEmail string) ([]QuestionStat, error) {
	areas, err := s.WeakAreaRepo.ListByEmail(userEmail)
	if err != nil {
		return nil, err
	}
	stats := make([]QuestionStat, 0, len(areas))
	for _, a := range areas {
		stats = append(stats, QuestionStat{
			QuestionText: a.QuestionText,
			TopicLabel:   a.TopicLabel,
			CourseName:   a.CourseName,
			WrongCount:   a.WrongCount,
			Reviewed:     a.Reviewed,
		})
	}
	return stats, nil
}

// WeakAreas returns the raw weak area rows.
func (s *UserService) WeakAreas(userEmail string) ([]model.WeakArea, error) {
	return s.WeakAreaRepo.ListByEmail(userEmail)
}

// ReviewWeakArea marks one weak area reviewed. Ownership is checked so a
// user cannot review someone else's row.
func (s *UserService) ReviewWeakArea(userEmail string, id uint) (*model.WeakArea, error) {
	area, err := s.WeakAreaRepo.FindByID(id)
	if err != nil || area.UserEmail != userEmail {
		return nil, util.ErrWeakAreaNotFound
	}
	area.Reviewed = true
	if err := s.WeakAreaRepo.Save(area); err != nil {
		return nil, err
	}
	return area, nil
}
