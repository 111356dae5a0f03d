package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a catalog file and lays every table it defines over the built-in
// defaults. Tables absent from the file keep their default content. Viper
// lower-cases map keys, so topics, skills and goals in the file are matched in
// lower case.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var file Catalog
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}

	c.merge(&file)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.QuestionBanks) > 0 {
		c.QuestionBanks = o.QuestionBanks
	}
	if len(o.DefaultBank) > 0 {
		c.DefaultBank = o.DefaultBank
	}
	if len(o.Skills) > 0 {
		c.Skills = o.Skills
	}
	if len(o.Agents) > 0 {
		c.Agents = o.Agents
	}
	if len(o.Paths) > 0 {
		c.Paths = o.Paths
	}
	if len(o.Resources) > 0 {
		c.Resources = o.Resources
	}
	if len(o.RoleGroups) > 0 {
		c.RoleGroups = o.RoleGroups
	}
	if len(o.Schedules) > 0 {
		c.Schedules = o.Schedules
	}
	if len(o.RoadmapPhases) > 0 {
		c.RoadmapPhases = o.RoadmapPhases
	}
	if len(o.RoadmapResources) > 0 {
		c.RoadmapResources = o.RoadmapResources
	}
}
