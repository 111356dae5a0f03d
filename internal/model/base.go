package model

import (
	"github.com/google/uuid"
)

// PassingScore is the minimum score counted as a pass. Badge tiers share it.
const PassingScore = 75

// MasteryScore is the minimum score for the Master badge tier.
const MasteryScore = 90

func GenerateUUID() string {
	return uuid.New().String()
}
