package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"learnpath_backend/internal/model"
)

// MemoryStore backs every repository interface with mutex-guarded maps.
// Missing rows surface as gorm.ErrRecordNotFound so services handle both
// stores with one check.
type MemoryStore struct {
	mu sync.RWMutex

	nextID    uint
	users     map[uint]*model.User
	attempts  map[uint]*model.QuizAttempt
	weakAreas map[uint]*model.WeakArea
	varks     map[string]*model.VarkResponse
	quests    map[uint]*model.Quest
	progress  map[uint]*model.UserProgress
	contents  []model.ContentItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:    1,
		users:     make(map[uint]*model.User),
		attempts:  make(map[uint]*model.QuizAttempt),
		weakAreas: make(map[uint]*model.WeakArea),
		varks:     make(map[string]*model.VarkResponse),
		quests:    make(map[uint]*model.Quest),
		progress:  make(map[uint]*model.UserProgress),
	}
}

// SeedContent loads the static catalogue; the gorm store does this via the
// database seeder instead.
func (s *MemoryStore) SeedContent(items []model.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = s.allocID()
		}
	}
	s.contents = items
}

func (s *MemoryStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func stamp(m *model.BaseModel) {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// --- UserRepository ---

func (s *MemoryStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = s.allocID()
	stamp(&user.BaseModel)
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *MemoryStore) FindByID(id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return &model.User{}, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *MemoryStore) FindByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return &model.User{}, gorm.ErrRecordNotFound
}

func (s *MemoryStore) Update(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stamp(&user.BaseModel)
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *MemoryStore) Leaderboard(limit int) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].Name < users[j].Name
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// --- QuizAttemptRepository ---

func (s *MemoryStore) FindByUserCourseTopic(userID uint, courseName, topicID string) (*model.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attempts {
		if a.UserID == userID && a.CourseName == courseName && a.TopicID == topicID {
			clone := *a
			return &clone, nil
		}
	}
	return &model.QuizAttempt{}, gorm.ErrRecordNotFound
}

func (s *MemoryStore) Save(attempt *model.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt.ID == 0 {
		attempt.ID = s.allocID()
	}
	stamp(&attempt.BaseModel)
	clone := *attempt
	s.attempts[attempt.ID] = &clone
	return nil
}

func (s *MemoryStore) ListByUser(userID uint) ([]model.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var attempts []model.QuizAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			attempts = append(attempts, *a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].UpdatedAt.After(attempts[j].UpdatedAt)
	})
	return attempts, nil
}

// --- WeakAreaRepository ---

func (s *MemoryStore) FindByQuestion(userEmail, courseName, topicID, questionText string) (*model.WeakArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.weakAreas {
		if w.UserEmail == userEmail && w.CourseName == courseName &&
			w.TopicID == topicID && w.QuestionText == questionText {
			clone := *w
			return &clone, nil
		}
	}
	return &model.WeakArea{}, gorm.ErrRecordNotFound
}

func (s *MemoryStore) SaveWeakArea(area *model.WeakArea) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if area.ID == 0 {
		area.ID = s.allocID()
	}
	stamp(&area.BaseModel)
	clone := *area
	s.weakAreas[area.ID] = &clone
	return nil
}

func (s *MemoryStore) ListByEmail(userEmail string) ([]model.WeakArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var areas []model.WeakArea
	for _, w := range s.weakAreas {
		if w.UserEmail == userEmail {
			areas = append(areas, *w)
		}
	}
	sort.Slice(areas, func(i, j int) bool {
		return areas[i].WrongCount > areas[j].WrongCount
	})
	return areas, nil
}

func (s *MemoryStore) FindWeakAreaByID(id uint) (*model.WeakArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.weakAreas[id]
	if !ok {
		return &model.WeakArea{}, gorm.ErrRecordNotFound
	}
	clone := *w
	return &clone, nil
}

// --- VarkRepository ---

func (s *MemoryStore) FindVarkByEmail(userEmail string) (*model.VarkResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.varks[strings.ToLower(userEmail)]
	if !ok {
		return &model.VarkResponse{}, gorm.ErrRecordNotFound
	}
	clone := *v
	return &clone, nil
}

func (s *MemoryStore) SaveVark(response *model.VarkResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if response.ID == 0 {
		response.ID = s.allocID()
	}
	stamp(&response.BaseModel)
	clone := *response
	s.varks[strings.ToLower(response.UserEmail)] = &clone
	return nil
}

// --- QuestRepository ---

func (s *MemoryStore) ListQuestsByUser(userID uint) ([]model.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var quests []model.Quest
	for _, q := range s.quests {
		if q.UserID == userID {
			quests = append(quests, *q)
		}
	}
	sort.Slice(quests, func(i, j int) bool { return quests[i].ID < quests[j].ID })
	return quests, nil
}

func (s *MemoryStore) FindQuestByID(id uint) (*model.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quests[id]
	if !ok {
		return &model.Quest{}, gorm.ErrRecordNotFound
	}
	clone := *q
	return &clone, nil
}

func (s *MemoryStore) FindByUserSlug(userID uint, slug string) (*model.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quests {
		if q.UserID == userID && q.Slug == slug {
			clone := *q
			return &clone, nil
		}
	}
	return &model.Quest{}, gorm.ErrRecordNotFound
}

func (s *MemoryStore) SaveQuest(quest *model.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quest.ID == 0 {
		quest.ID = s.allocID()
	}
	stamp(&quest.BaseModel)
	clone := *quest
	s.quests[quest.ID] = &clone
	return nil
}

// --- ProgressRepository ---

func (s *MemoryStore) FindProgressByUserID(userID uint) (*model.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[userID]
	if !ok {
		return &model.UserProgress{}, gorm.ErrRecordNotFound
	}
	clone := *p
	clone.CompletedNodes = append([]string(nil), p.CompletedNodes...)
	clone.UnlockedNodes = append([]string(nil), p.UnlockedNodes...)
	return &clone, nil
}

func (s *MemoryStore) SaveProgress(progress *model.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if progress.ID == 0 {
		progress.ID = s.allocID()
	}
	stamp(&progress.BaseModel)
	clone := *progress
	clone.CompletedNodes = append([]string(nil), progress.CompletedNodes...)
	clone.UnlockedNodes = append([]string(nil), progress.UnlockedNodes...)
	s.progress[progress.UserID] = &clone
	return nil
}

// --- ContentRepository ---

func (s *MemoryStore) List() ([]model.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ContentItem(nil), s.contents...), nil
}

func (s *MemoryStore) ListByType(contentType string) ([]model.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []model.ContentItem
	for _, item := range s.contents {
		if strings.EqualFold(item.Type, contentType) {
			items = append(items, item)
		}
	}
	return items, nil
}

// Adapters split the store into the per-entity interfaces where method
// names collide across entities.

type memoryWeakAreas struct{ *MemoryStore }

func (m memoryWeakAreas) Save(area *model.WeakArea) error  { return m.SaveWeakArea(area) }
func (m memoryWeakAreas) FindByID(id uint) (*model.WeakArea, error) {
	return m.FindWeakAreaByID(id)
}

type memoryVarks struct{ *MemoryStore }

func (m memoryVarks) FindByEmail(email string) (*model.VarkResponse, error) {
	return m.FindVarkByEmail(email)
}
func (m memoryVarks) Save(response *model.VarkResponse) error { return m.SaveVark(response) }

type memoryQuests struct{ *MemoryStore }

func (m memoryQuests) ListByUser(userID uint) ([]model.Quest, error) {
	return m.ListQuestsByUser(userID)
}
func (m memoryQuests) FindByID(id uint) (*model.Quest, error) { return m.FindQuestByID(id) }
func (m memoryQuests) Save(quest *model.Quest) error          { return m.SaveQuest(quest) }

type memoryProgress struct{ *MemoryStore }

func (m memoryProgress) FindByUserID(userID uint) (*model.UserProgress, error) {
	return m.FindProgressByUserID(userID)
}
func (m memoryProgress) Save(progress *model.UserProgress) error { return m.SaveProgress(progress) }

func (s *MemoryStore) Users() UserRepository               { return s }
func (s *MemoryStore) QuizAttempts() QuizAttemptRepository { return s }
func (s *MemoryStore) WeakAreas() WeakAreaRepository       { return memoryWeakAreas{s} }
func (s *MemoryStore) Varks() VarkRepository               { return memoryVarks{s} }
func (s *MemoryStore) Quests() QuestRepository             { return memoryQuests{s} }
func (s *MemoryStore) Progress() ProgressRepository        { return memoryProgress{s} }
func (s *MemoryStore) Contents() ContentRepository         { return s }
