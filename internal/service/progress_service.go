package service

import (
	"strings"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// TopicsPerRole is the assumed number of topics in any role's path.
const TopicsPerRole = 20

const DefaultLeaderboardSize = 10

type ProgressService struct {
	Repo         *repository.ProgressRepository
	Achievements *AchievementService
	Certificates config.CertificateConfig
}

func NewProgressService(
	repo *repository.ProgressRepository,
	achievements *AchievementService,
	certificates config.CertificateConfig,
) *ProgressService {
	return &ProgressService{
		Repo:         repo,
		Achievements: achievements,
		Certificates: certificates,
	}
}

// CalculateProgress maps a completed topic count to a 0-100 percentage.
func CalculateProgress(completed int) int {
	return min(100, util.Percent(completed, TopicsPerRole))
}

// BadgeFor returns the badge earned by score on topic, if any.
func BadgeFor(topic string, score int) (id, name string, ok bool) {
	switch {
	case score >= model.MasteryScore:
		return "master-" + topic, "Master", true
	case score >= model.PassingScore:
		return "intermediate-" + topic, "Intermediate", true
	default:
		return "", "", false
	}
}

// InitializeUser starts a fresh progress record. Initializing an existing
// user replaces the record; achievements already unlocked are kept.
func (s *ProgressService) InitializeUser(userID, role, level string) (*model.UserProgress, error) {
	userID = strings.TrimSpace(userID)
	role = strings.TrimSpace(role)
	if userID == "" {
		return nil, util.ErrMissingUserID
	}
	if role == "" {
		return nil, util.ErrMissingRole
	}
	if level == "" {
		level = string(model.LevelBeginner)
	}
	l, ok := model.ParseLevel(level)
	if !ok {
		return nil, util.ErrInvalidLevel
	}

	now := time.Now()
	p := &model.UserProgress{
		UserID:           userID,
		Role:             role,
		Level:            l,
		StartDate:        now,
		CompletedTopics:  []string{},
		AssessmentScores: []model.ScoreRecord{},
		Badges:           []string{},
		Certificates:     []model.Certificate{},
		LastActivity:     now,
	}
	s.Repo.Create(p)

	monitoring.UsersInitialized.Inc()
	logger.Log.Info("user initialized",
		zap.String("user_id", userID),
		zap.String("role", role),
		zap.String("level", string(l)))

	return p.Clone(), nil
}

// CompleteTopic marks topic as completed. Completing a topic twice is a no-op.
func (s *ProgressService) CompleteTopic(userID, topic string) (*model.UserProgress, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrMissingTopic
	}

	completed := 0
	p, err := s.Repo.Update(userID, func(p *model.UserProgress) error {
		if p.HasCompleted(topic) {
			return nil
		}
		p.CompletedTopics = append(p.CompletedTopics, topic)
		p.Progress = CalculateProgress(len(p.CompletedTopics))
		p.LastActivity = time.Now()
		completed = len(p.CompletedTopics)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed > 0 {
		logger.Log.Debug("topic completed",
			zap.String("user_id", userID),
			zap.String("topic", topic),
			zap.Int("progress", p.Progress))
		s.Achievements.CheckMilestones(userID, completed)
	}
	return p, nil
}

// RecordAssessmentScore appends a score and awards the tier badge it earns.
func (s *ProgressService) RecordAssessmentScore(userID, topic string, score int) (*model.UserProgress, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrMissingTopic
	}
	if score < 0 || score > 100 {
		return nil, util.ErrInvalidScore
	}

	rec := model.ScoreRecord{
		Topic:  topic,
		Score:  score,
		Date:   time.Now(),
		Passed: score >= model.PassingScore,
	}
	p, err := s.Repo.AddScore(userID, rec)
	if err != nil {
		return nil, err
	}

	if badgeID, badgeName, ok := BadgeFor(topic, score); ok {
		if s.Achievements.AwardBadge(userID, badgeID, badgeName) {
			if p, err = s.Repo.FindByID(userID); err != nil {
				return nil, err
			}
		}
	}

	logger.Log.Info("assessment score recorded",
		zap.String("user_id", userID),
		zap.String("topic", topic),
		zap.Int("score", score))

	return p, nil
}

// AwardCertificate issues a certificate to the user. Empty role or level
// fall back to the user's own.
func (s *ProgressService) AwardCertificate(userID, role, level string) (*model.Certificate, error) {
	var l model.Level
	if level != "" {
		var ok bool
		if l, ok = model.ParseLevel(level); !ok {
			return nil, util.ErrInvalidLevel
		}
	}

	var cert model.Certificate
	_, err := s.Repo.Update(userID, func(p *model.UserProgress) error {
		if role == "" {
			role = p.Role
		}
		if l == "" {
			l = p.Level
		}

		id := "cert_" + model.GenerateUUID()
		issued := time.Now()
		cert = model.Certificate{
			ID:              id,
			Role:            role,
			Level:           l,
			IssuedDate:      issued,
			ExpiryDate:      issued.Add(model.CertificateValidity),
			VerificationURL: strings.TrimRight(s.Certificates.VerifyBaseURL, "/") + "/" + id,
		}
		p.Certificates = append(p.Certificates, cert)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("certificate issued",
		zap.String("user_id", userID),
		zap.String("certificate_id", cert.ID),
		zap.String("role", role))

	s.Achievements.TrackAchievement(userID, "certified-"+role, "Completed "+role+" Certification")
	return &cert, nil
}

func (s *ProgressService) GetUserProgress(userID string) (*model.UserProgress, error) {
	return s.Repo.FindByID(userID)
}

func (s *ProgressService) GetLeaderboard(limit int) []model.LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return s.Repo.Leaderboard(limit)
}

func (s *ProgressService) GetAnalytics() model.Analytics {
	return s.Repo.Analytics()
}
