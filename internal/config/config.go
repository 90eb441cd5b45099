package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"SCENEEDIT_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"SCENEEDIT_LOG_LEVEL" default:"info"`

	HistoryLimit int     `envconfig:"SCENEEDIT_HISTORY_LIMIT" default:"0"`
	MinZoom      float64 `envconfig:"SCENEEDIT_MIN_ZOOM" default:"0.25"`
	MaxZoom      float64 `envconfig:"SCENEEDIT_MAX_ZOOM" default:"4"`
	ZoomStep     float64 `envconfig:"SCENEEDIT_ZOOM_STEP" default:"1.08"`
	MinDrawSize  float64 `envconfig:"SCENEEDIT_MIN_DRAW_SIZE" default:"5"`

	PropagateDescendants bool `envconfig:"SCENEEDIT_PROPAGATE_DESCENDANTS" default:"false"`
	ParentToTopmost      bool `envconfig:"SCENEEDIT_PARENT_TO_TOPMOST" default:"false"`

	JWTSecret string        `envconfig:"SCENEEDIT_JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"SCENEEDIT_TOKEN_TTL" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
