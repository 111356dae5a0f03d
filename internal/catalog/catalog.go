// Package catalog holds the static content tables the services read from:
// question banks, the skill to track map, learning paths and roadmap data.
package catalog

import (
	"fmt"
	"strings"

	"skillpath_backend/internal/model"

	"github.com/go-playground/validator/v10"
)

// TopicPlaceholder is replaced with the requested topic in DefaultBank entries.
const TopicPlaceholder = "{topic}"

type BankEntry struct {
	Text          string             `mapstructure:"text" validate:"required"`
	Type          model.QuestionType `mapstructure:"type" validate:"required,oneof=multiple-choice short-answer"`
	Options       []string           `mapstructure:"options"`
	CorrectAnswer string             `mapstructure:"correct_answer" validate:"required"`
	Difficulty    model.Difficulty   `mapstructure:"difficulty" validate:"required,oneof=easy medium hard"`
}

type Catalog struct {
	QuestionBanks    map[string][]BankEntry          `mapstructure:"question_banks" validate:"dive,dive"`
	DefaultBank      []BankEntry                     `mapstructure:"default_bank" validate:"required,min=1,dive"`
	Skills           map[string]model.SkillInfo      `mapstructure:"skills" validate:"required,dive"`
	Agents           []model.Agent                   `mapstructure:"agents" validate:"required,min=1,dive"`
	Paths            map[string]model.LearningPath   `mapstructure:"paths" validate:"required,dive"`
	Resources        map[string][]model.Resource     `mapstructure:"resources" validate:"dive,dive"`
	RoleGroups       []model.RoleGroup               `mapstructure:"role_groups" validate:"required,min=1,dive"`
	Schedules        map[string]model.WeeklySchedule `mapstructure:"schedules" validate:"required,dive"`
	RoadmapPhases    []model.RoadmapPhase            `mapstructure:"roadmap_phases" validate:"required,min=1,dive"`
	RoadmapResources []string                        `mapstructure:"roadmap_resources"`
}

// Validate checks struct constraints and the cross references between tables.
func (c *Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if _, ok := c.Schedules[string(model.LevelBeginner)]; !ok {
		return fmt.Errorf("catalog: schedules must define %q", model.LevelBeginner)
	}

	known := make(map[model.Track]bool, len(c.Agents))
	for _, a := range c.Agents {
		known[a.ID] = true
	}
	for name, s := range c.Skills {
		if !known[s.Track] {
			return fmt.Errorf("catalog: skill %q references unknown track %d", name, s.Track)
		}
	}
	for goal, p := range c.Paths {
		for _, t := range p.Tracks {
			if !known[t] {
				return fmt.Errorf("catalog: path %q references unknown track %d", goal, t)
			}
		}
	}
	return nil
}

// QuestionBank returns the bank for topic, or the default bank with the topic
// substituted into its text when the topic has no bank of its own.
func (c *Catalog) QuestionBank(topic string) []BankEntry {
	if bank, ok := c.QuestionBanks[topic]; ok {
		return bank
	}

	bank := make([]BankEntry, len(c.DefaultBank))
	for i, e := range c.DefaultBank {
		e.Text = strings.ReplaceAll(e.Text, TopicPlaceholder, topic)
		bank[i] = e
	}
	return bank
}

// Skill looks a skill up case-insensitively.
func (c *Catalog) Skill(name string) (model.SkillInfo, bool) {
	info, ok := c.Skills[strings.ToLower(name)]
	return info, ok
}

func (c *Catalog) Path(goal string) (model.LearningPath, bool) {
	p, ok := c.Paths[goal]
	return p, ok
}

func (c *Catalog) PathResources(goal string) []model.Resource {
	return append([]model.Resource{}, c.Resources[goal]...)
}

// Schedule falls back to the beginner schedule for unknown levels.
func (c *Catalog) Schedule(level string) model.WeeklySchedule {
	if s, ok := c.Schedules[level]; ok {
		return s
	}
	return c.Schedules[string(model.LevelBeginner)]
}

func (c *Catalog) TotalRoles() int {
	n := 0
	for _, g := range c.RoleGroups {
		n += len(g.Roles)
	}
	return n
}
