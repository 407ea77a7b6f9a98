package digest

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// DefaultSchedule sends digests every day at 07:00.
const DefaultSchedule = "0 7 * * *"

// Config is the digest file, e.g.
//
//	schedule: "0 7 * * *"
//	digests:
//	  - city: Mumbai
//	    recipients: [ops@example.com]
type Config struct {
	Schedule string  `yaml:"schedule"`
	Digests  []Entry `yaml:"digests"`
}

// Entry is one city mailed to a list of recipients. Entries are independent.
type Entry struct {
	City       string   `yaml:"city"`
	Recipients []string `yaml:"recipients"`
}

// LoadConfig reads and validates a digest file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read digest config %s: %w", path, err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes YAML and applies defaults.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse digest config: %w", err)
	}
	if strings.TrimSpace(cfg.Schedule) == "" {
		cfg.Schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("digest config: invalid schedule %q: %w", cfg.Schedule, err)
	}
	if len(cfg.Digests) == 0 {
		return nil, fmt.Errorf("digest config: at least one digest is required")
	}
	for i, e := range cfg.Digests {
		if strings.TrimSpace(e.City) == "" {
			return nil, fmt.Errorf("digest config: digests[%d].city is required", i)
		}
		if len(e.Recipients) == 0 {
			return nil, fmt.Errorf("digest config: digests[%d] (%s) has no recipients", i, e.City)
		}
	}
	return &cfg, nil
}
