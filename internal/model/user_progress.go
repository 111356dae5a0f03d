package model

import "time"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func ParseLevel(s string) (Level, bool) {
	switch l := Level(s); l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return l, true
	default:
		return "", false
	}
}

type ScoreRecord struct {
	Topic  string    `json:"topic"`
	Score  int       `json:"score"`
	Date   time.Time `json:"date"`
	Passed bool      `json:"passed"`
}

// CertificateValidity is the time from issue to expiry.
const CertificateValidity = 365 * 24 * time.Hour

type Certificate struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Level           Level     `json:"level"`
	IssuedDate      time.Time `json:"issuedDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	VerificationURL string    `json:"verificationUrl"`
}

type UserProgress struct {
	UserID           string        `json:"userId"`
	Role             string        `json:"role"`
	Level            Level         `json:"level"`
	StartDate        time.Time     `json:"startDate"`
	Progress         int           `json:"progress"`
	CompletedTopics  []string      `json:"completedTopics"`
	AssessmentScores []ScoreRecord `json:"assessmentScores"`
	Badges           []string      `json:"badges"`
	Certificates     []Certificate `json:"certificates"`
	LastActivity     time.Time     `json:"lastActivity"`
}

func (p *UserProgress) HasCompleted(topic string) bool {
	for _, t := range p.CompletedTopics {
		if t == topic {
			return true
		}
	}
	return false
}

func (p *UserProgress) HasBadge(badgeID string) bool {
	for _, b := range p.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share slices with the ledger.
func (p *UserProgress) Clone() *UserProgress {
	if p == nil {
		return nil
	}
	c := *p
	c.CompletedTopics = append([]string{}, p.CompletedTopics...)
	c.AssessmentScores = append([]ScoreRecord{}, p.AssessmentScores...)
	c.Badges = append([]string{}, p.Badges...)
	c.Certificates = append([]Certificate{}, p.Certificates...)
	return &c
}
