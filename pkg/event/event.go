package event

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plfanzen/plfanzen/pkg/script"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// FileName is the event configuration file at the repository root.
const FileName = "event.yml"

// DefaultPoints is awarded per solve when the event declares no points_fn.
const DefaultPoints int64 = 100

// Category is a challenge grouping shown by the frontend.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// Difficulty is a labeled difficulty tier challenges reference by id.
type Difficulty struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Config is the parsed event.yml. Markdown fields pass through untouched;
// rendering is the frontend's problem.
type Config struct {
	EventName             string                `yaml:"event_name"`
	FrontPageMD           string                `yaml:"front_page_md"`
	RulesMD               string                `yaml:"rules_md"`
	StartTime             time.Time             `yaml:"start_time"`
	EndTime               time.Time             `yaml:"end_time"`
	UseTeams              bool                  `yaml:"use_teams"`
	RegistrationStartTime *time.Time            `yaml:"registration_start_time"`
	RegistrationEndTime   *time.Time            `yaml:"registration_end_time"`
	MaxTeamSize           *uint32               `yaml:"max_team_size"`
	ScoreboardFreezeTime  *time.Time            `yaml:"scoreboard_freeze_time"`
	PointsFn              string                `yaml:"points_fn"`
	Categories            map[string]Category   `yaml:"categories"`
	Difficulties          map[string]Difficulty `yaml:"difficulties"`
}

// Load reads and parses event.yml from the repository working tree.
func Load(repoDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(repoDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.NewNotFound("event configuration not found, the repository may not be synced yet")
		}
		return nil, types.WrapInternal(err, "failed to read event configuration")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, types.WrapInternal(err, "failed to parse event configuration")
	}
	return &cfg, nil
}

// CalculatePoints computes the point value of one solve. Without a
// points_fn every solve is worth DefaultPoints; with one, the script
// decides based on challenge metadata and solve statistics.
func (c *Config) CalculatePoints(metadata map[string]interface{}, totalSolves, nthSolve, totalCompetitors uint32) (int64, error) {
	if c.PointsFn == "" {
		return DefaultPoints, nil
	}
	return script.Points(c.PointsFn, metadata, totalSolves, nthSolve, totalCompetitors)
}
