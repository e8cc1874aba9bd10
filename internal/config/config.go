package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int `yaml:"port"`
		RateLimitRPS int `yaml:"rate_limit_rps"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Redis struct {
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Scheduling struct {
		Timezone        string `yaml:"timezone"`
		SlotStepMinutes int    `yaml:"slot_step_minutes"`
		MinAdvanceHours int    `yaml:"min_advance_hours"`
		MaxAdvanceDays  int    `yaml:"max_advance_days"`
	} `yaml:"scheduling"`

	Risk struct {
		MaxNoShows     int     `yaml:"max_no_shows"`
		MinSampleSize  int     `yaml:"min_sample_size"`
		MaxCancelRatio float64 `yaml:"max_cancel_ratio"`
	} `yaml:"risk"`

	AutoCancel struct {
		Enabled              bool `yaml:"enabled"`
		HorizonHours         int  `yaml:"horizon_hours"`
		CheckIntervalMinutes int  `yaml:"check_interval_minutes"`
	} `yaml:"autocancel"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/barberbook.db"
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) MinAdvance() time.Duration {
	if c.Scheduling.MinAdvanceHours <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.Scheduling.MinAdvanceHours) * time.Hour
}

func (c *Config) MaxAdvance() time.Duration {
	if c.Scheduling.MaxAdvanceDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(c.Scheduling.MaxAdvanceDays) * 24 * time.Hour
}

func (c *Config) SlotStep() int {
	if c.Scheduling.SlotStepMinutes <= 0 {
		return 30
	}
	return c.Scheduling.SlotStepMinutes
}

func (c *Config) Location() (*time.Location, error) {
	if c.Scheduling.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Scheduling.Timezone)
}

func (c *Config) AutoCancelHorizon() time.Duration {
	if c.AutoCancel.HorizonHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.AutoCancel.HorizonHours) * time.Hour
}

func (c *Config) AutoCancelInterval() time.Duration {
	if c.AutoCancel.CheckIntervalMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.AutoCancel.CheckIntervalMinutes) * time.Minute
}

func (c *Config) CacheTTL() time.Duration {
	if c.Redis.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Redis.CacheTTLSeconds) * time.Second
}
