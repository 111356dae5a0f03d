package repository

import (
	"sync"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

// AssessmentRepository keeps generated assessments and their latest
// evaluation result in memory.
type AssessmentRepository struct {
	mu          sync.RWMutex
	assessments map[string]*model.Assessment
	results     map[string]*model.EvaluationResult
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{
		assessments: make(map[string]*model.Assessment),
		results:     make(map[string]*model.EvaluationResult),
	}
}

func (r *AssessmentRepository) Create(a *model.Assessment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[a.ID] = a
}

// FindByID returns the stored assessment. Assessments are never mutated after
// Create, so the pointer is shared.
func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assessments[id]
	if !ok {
		return nil, util.ErrAssessmentNotFound
	}
	return a, nil
}

// SaveResult replaces any earlier result for the same assessment.
func (r *AssessmentRepository) SaveResult(res *model.EvaluationResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[res.AssessmentID] = res
}

func (r *AssessmentRepository) FindResult(assessmentID string) (*model.EvaluationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[assessmentID]
	if !ok {
		return nil, util.ErrResultNotFound
	}
	return res, nil
}

func (r *AssessmentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assessments)
}
