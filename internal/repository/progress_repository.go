package repository

import (
	"sort"
	"sync"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

const maxPopularRoles = 10

// ProgressRepository is the in-memory progress ledger. One lock guards the
// user records and the aggregate analytics, so score recording and the
// running average never interleave.
type ProgressRepository struct {
	mu    sync.RWMutex
	users map[string]*model.UserProgress
	order []string // first insertion order, used as the leaderboard tie-break

	usersStarted         int
	assessmentsCompleted int
	averageScore         int
	popularRoles         []model.RoleCount
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		users: make(map[string]*model.UserProgress),
	}
}

// Create stores p, replacing any existing record for the same user. A
// replaced user keeps its original position in the insertion order.
func (r *ProgressRepository) Create(p *model.UserProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[p.UserID]; !exists {
		r.order = append(r.order, p.UserID)
	}
	r.users[p.UserID] = p.Clone()
	r.usersStarted++
	r.trackPopularRole(p.Role)
}

func (r *ProgressRepository) trackPopularRole(role string) {
	found := false
	for i := range r.popularRoles {
		if r.popularRoles[i].Role == role {
			r.popularRoles[i].Count++
			found = true
			break
		}
	}
	if !found {
		r.popularRoles = append(r.popularRoles, model.RoleCount{Role: role, Count: 1})
	}

	sort.SliceStable(r.popularRoles, func(i, j int) bool {
		return r.popularRoles[i].Count > r.popularRoles[j].Count
	})
	if len(r.popularRoles) > maxPopularRoles {
		r.popularRoles = r.popularRoles[:maxPopularRoles]
	}
}

func (r *ProgressRepository) FindByID(userID string) (*model.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return p.Clone(), nil
}

// Update runs fn against the stored record under the ledger lock and returns
// a copy of the result. An error from fn is returned unchanged; fn must not
// leave the record half modified when it fails.
func (r *ProgressRepository) Update(userID string, fn func(p *model.UserProgress) error) (*model.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// AddScore appends rec to the user's score history and refreshes the
// completed-assessment count and the average score across all tracked users.
func (r *ProgressRepository) AddScore(userID string, rec model.ScoreRecord) (*model.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	p.AssessmentScores = append(p.AssessmentScores, rec)
	p.LastActivity = rec.Date

	r.assessmentsCompleted++
	r.averageScore = r.computeAverageScore()

	return p.Clone(), nil
}

func (r *ProgressRepository) computeAverageScore() int {
	total, count := 0, 0
	for _, p := range r.users {
		for _, s := range p.AssessmentScores {
			total += s.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return util.RoundDiv(total, count)
}

// Leaderboard orders users by progress, highest first, keeping insertion
// order among equal progress.
func (r *ProgressRepository) Leaderboard(limit int) []model.LeaderboardEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.UserProgress, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Progress > users[j].Progress
	})
	if limit >= 0 && limit < len(users) {
		users = users[:limit]
	}

	entries := make([]model.LeaderboardEntry, len(users))
	for i, p := range users {
		entries[i] = model.LeaderboardEntry{
			Rank:            i + 1,
			UserID:          p.UserID,
			Role:            p.Role,
			Progress:        p.Progress,
			BadgeCount:      len(p.Badges),
			CompletedTopics: len(p.CompletedTopics),
		}
	}
	return entries
}

func (r *ProgressRepository) Analytics() model.Analytics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	popular := append([]model.RoleCount{}, r.popularRoles...)
	top := popular
	if len(top) > 5 {
		top = top[:5]
	}

	return model.Analytics{
		TotalUsersStarted:         r.usersStarted,
		TotalAssessmentsCompleted: r.assessmentsCompleted,
		AverageScore:              r.averageScore,
		MostPopularRoles:          popular,
		TopRoles:                  append([]model.RoleCount{}, top...),
		TotalUsers:                len(r.users),
	}
}
