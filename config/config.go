package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig        `yaml:"server"`
	Log      LogConfig           `yaml:"log"`
	Auth     AuthConfig          `yaml:"auth"`
	Store    StoreConfig         `yaml:"store"`
	Engine   EngineConfig        `yaml:"engine"`
	KnownBad KnownBadConfig      `yaml:"known_bad"`
	Archive  ArchiveConfig       `yaml:"archive"`
	Webhooks map[string][]string `yaml:"webhooks"`
	Jobs     JobsConfig          `yaml:"jobs"`
	Users    []User              `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type StoreConfig struct {
	MaxDocuments  int `yaml:"max_documents"`
	RetentionDays int `yaml:"retention_days"`
}

type EngineConfig struct {
	MaxDocSize        int    `yaml:"max_doc_size"` // characters
	MaxWordsPerClause int    `yaml:"max_words_per_clause"`
	TargetStyle       string `yaml:"target_style"`
}

type KnownBadConfig struct {
	Path string `yaml:"path"`
}

// ArchiveConfig configures the optional MinIO archive for uploaded files
type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type JobsConfig struct {
	RetentionSchedule string `yaml:"retention_schedule"` // cron spec
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Store.MaxDocuments == 0 {
		cfg.Store.MaxDocuments = 100
	}
	if cfg.Store.RetentionDays == 0 {
		cfg.Store.RetentionDays = 30
	}
	if cfg.Engine.MaxDocSize == 0 {
		cfg.Engine.MaxDocSize = 8000
	}
	if cfg.Engine.MaxWordsPerClause == 0 {
		cfg.Engine.MaxWordsPerClause = 100
	}
	if cfg.Engine.TargetStyle == "" {
		cfg.Engine.TargetStyle = "Plain English, numbered clauses, short sentences"
	}
	if cfg.KnownBad.Path == "" {
		cfg.KnownBad.Path = "data/known_bad/known_bad.jsonl"
	}
	if cfg.Archive.ExpireDays == 0 {
		cfg.Archive.ExpireDays = 7
	}
	if cfg.Jobs.RetentionSchedule == "" {
		cfg.Jobs.RetentionSchedule = "0 2 * * *"
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
