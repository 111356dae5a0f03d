package service

import (
	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

const gapEstimatedTime = "5-7 days"

// SkillService matches skills to specialist tracks and learning paths. It
// holds no state of its own.
type SkillService struct {
	Catalog *catalog.Catalog
}

func NewSkillService(cat *catalog.Catalog) *SkillService {
	return &SkillService{Catalog: cat}
}

// MatchToTrack returns the track most of the recognised skills belong to.
// On a tie the track seen first wins. ok is false when no skill is known.
func (s *SkillService) MatchToTrack(skills []string) (track model.Track, ok bool) {
	var order []model.Track
	tally := make(map[model.Track]int)
	for _, skill := range skills {
		info, known := s.Catalog.Skill(skill)
		if !known {
			continue
		}
		if _, seen := tally[info.Track]; !seen {
			order = append(order, info.Track)
		}
		tally[info.Track]++
	}
	if len(order) == 0 {
		return 0, false
	}

	best := order[0]
	for _, t := range order[1:] {
		if tally[t] > tally[best] {
			best = t
		}
	}
	return best, true
}

// RecommendPath compares currentSkills with the skills goal requires. Skill
// names are matched exactly. ok is false for an unknown goal.
func (s *SkillService) RecommendPath(goal string, currentSkills []string) (*model.Recommendation, bool) {
	path, ok := s.Catalog.Path(goal)
	if !ok {
		return nil, false
	}

	have := make(map[string]bool, len(currentSkills))
	for _, skill := range currentSkills {
		have[skill] = true
	}

	gaps := []string{}
	for _, skill := range path.Skills {
		if !have[skill] {
			gaps = append(gaps, skill)
		}
	}

	return &model.Recommendation{
		Goal:              goal,
		Tracks:            append([]model.Track{}, path.Tracks...),
		Duration:          path.Duration,
		Level:             path.Level,
		RequiredSkills:    append([]string{}, path.Skills...),
		SkillGaps:         gaps,
		CompletionPercent: util.Percent(len(path.Skills)-len(gaps), len(path.Skills)),
		NextSteps:         nextStepsForGaps(gaps),
		Resources:         s.Catalog.PathResources(goal),
	}, true
}

func nextStepsForGaps(gaps []string) []model.NextStep {
	steps := make([]model.NextStep, len(gaps))
	for i, skill := range gaps {
		steps[i] = model.NextStep{
			Step:          i + 1,
			Skill:         skill,
			EstimatedTime: gapEstimatedTime,
			Activities: []string{
				"Learn " + skill + " fundamentals",
				"Complete practice exercises",
				"Build mini project",
				"Take assessment",
			},
		}
	}
	return steps
}

// SuggestCareerPaths proposes next paths for the track the skills match.
func (s *SkillService) SuggestCareerPaths(skills []string) []model.CareerSuggestion {
	track, ok := s.MatchToTrack(skills)
	if !ok {
		return []model.CareerSuggestion{}
	}

	switch track {
	case catalog.TrackFrontend:
		return []model.CareerSuggestion{
			{Path: "frontend-specialist", Difficulty: model.LevelIntermediate, TimeToNext: "3-4 months"},
			{Path: "full-stack", Difficulty: model.LevelAdvanced, TimeToNext: "6-8 months"},
		}
	case catalog.TrackCloud:
		return []model.CareerSuggestion{
			{Path: "devops-engineer", Difficulty: model.LevelIntermediate, TimeToNext: "4-5 months"},
		}
	default:
		return []model.CareerSuggestion{}
	}
}
