package repository

import (
	"sync"

	"skillpath_backend/internal/model"
)

type AchievementRepository struct {
	mu           sync.RWMutex
	achievements map[string][]model.Achievement
}

func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{achievements: make(map[string][]model.Achievement)}
}

// Add records a for the user unless an achievement with the same id is
// already there. It reports whether a was added.
func (r *AchievementRepository) Add(userID string, a model.Achievement) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.achievements[userID] {
		if existing.ID == a.ID {
			return false
		}
	}
	r.achievements[userID] = append(r.achievements[userID], a)
	return true
}

// FindByUserID never fails; unknown users have no achievements.
func (r *AchievementRepository) FindByUserID(userID string) []model.Achievement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Achievement{}, r.achievements[userID]...)
}
