package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learnpath_backend/internal/adaptive"
	"learnpath_backend/internal/curriculum"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo repository.ProgressRepository
	GraphRepo    *repository.GraphCurriculumRepository
}

func NewProgressService(progressRepo repository.ProgressRepository, graphRepo *repository.GraphCurriculumRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		GraphRepo:    graphRepo,
	}
}

// PlacementBank exposes the fixed placement questions.
func (s *ProgressService) PlacementBank() []adaptive.PlacementQuestion {
	return adaptive.PlacementBank()
}

// PlacementOutcome reports the scored placement.
type PlacementOutcome struct {
	Theta         float64  `json:"theta"`
	Correctness   []bool   `json:"correctness"`
	UnlockedNodes []string `json:"unlockedNodes"`
}

// SubmitPlacement scores the placement answers and resets the user's unlock
// state from the resulting theta. Previously completed nodes survive; the
// unlocked set is merged, never shrunk.
func (s *ProgressService) SubmitPlacement(user *model.User, answers []adaptive.PlacementAnswer) (*PlacementOutcome, error) {
	theta, correctness := adaptive.ScorePlacement(answers)
	unlocked := adaptive.UnlockedForTheta(theta)

	progress, err := s.getOrInit(user.ID)
	if err != nil {
		return nil, err
	}

	progress.Theta = theta
	for _, id := range unlocked {
		progress.UnlockedNodes = mergeNode(progress.UnlockedNodes, id)
	}
	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	return &PlacementOutcome{
		Theta:         theta,
		Correctness:   correctness,
		UnlockedNodes: progress.UnlockedNodes,
	}, nil
}

// CompleteNode marks a curriculum node done and unlocks its one-hop
// dependents. The graph mirror write is best-effort.
func (s *ProgressService) CompleteNode(ctx context.Context, user *model.User, nodeID string) (*model.UserProgress, error) {
	if _, ok := curriculum.Find(nodeID); !ok {
		return nil, util.ErrCourseNotFound
	}

	progress, err := s.getOrInit(user.ID)
	if err != nil {
		return nil, err
	}

	progress.CompletedNodes, progress.UnlockedNodes =
		adaptive.PropagateUnlock(progress.CompletedNodes, progress.UnlockedNodes, nodeID)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	if s.GraphRepo.Enabled() {
		s.GraphRepo.RecordCompletion(ctx, user.Email, nodeID)
	}

	return progress, nil
}

// Get returns the user's progress, initialized with the always-open roots
// on first read.
func (s *ProgressService) Get(userID uint) (*model.UserProgress, error) {
	progress, err := s.getOrInit(userID)
	if err != nil {
		return nil, err
	}
	if progress.ID == 0 {
		if err := s.ProgressRepo.Save(progress); err != nil {
			return nil, err
		}
	}
	return progress, nil
}

func (s *ProgressService) getOrInit(userID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserProgress{
			UserID:         userID,
			CompletedNodes: []string{},
			UnlockedNodes:  adaptive.UnlockedForTheta(0),
		}, nil
	} else if err != nil {
		return nil, err
	}
	if progress.CompletedNodes == nil {
		progress.CompletedNodes = []string{}
	}
	if progress.UnlockedNodes == nil {
		progress.UnlockedNodes = adaptive.UnlockedForTheta(0)
	}
	return progress, nil
}

func mergeNode(set []string, id string) []string {
	for _, s := range set {
		if s == id {
			return set
		}
	}
	return append(set, id)
}
