package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/model"
)

// ContentService serves the roadmap content behind the public endpoints.
type ContentService struct {
	Catalog *catalog.Catalog
}

func NewContentService(cat *catalog.Catalog) *ContentService {
	return &ContentService{Catalog: cat}
}

type RoadmapIndex struct {
	TotalRoles int                 `json:"totalRoles"`
	Groups     map[string][]string `json:"groups"`
}

func (s *ContentService) Roadmaps() RoadmapIndex {
	groups := make(map[string][]string, len(s.Catalog.RoleGroups))
	for _, g := range s.Catalog.RoleGroups {
		groups[g.Name] = append([]string{}, g.Roles...)
	}
	return RoadmapIndex{TotalRoles: s.Catalog.TotalRoles(), Groups: groups}
}

func (s *ContentService) Roadmap(role string) model.Roadmap {
	return model.Roadmap{
		Title:      capitalize(role) + " Roadmap",
		Duration:   "4-12 weeks",
		Difficulty: model.LevelIntermediate,
		Phases:     append([]model.RoadmapPhase{}, s.Catalog.RoadmapPhases...),
		Resources:  append([]string{}, s.Catalog.RoadmapResources...),
	}
}

// LearningPath returns the weekly schedule for level; unknown levels get the
// beginner schedule.
func (s *ContentService) LearningPath(level string) model.WeeklySchedule {
	return s.Catalog.Schedule(level)
}

func (s *ContentService) Agents() []model.Agent {
	return append([]model.Agent{}, s.Catalog.Agents...)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
