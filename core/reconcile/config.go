package reconcile

import "time"

// Config holds configuration for menu reconciliation.
type Config struct {
	// Mode selects the persistence variant (source, local).
	Mode string `mapstructure:"mode" default:"source"`
	// StagingKey is the staging store key holding pending changes.
	StagingKey string `mapstructure:"staging_key" default:"menu-backup"`
	// CacheTTL is how long a fetched baseline stays fresh. Zero disables caching.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"5s"`
	// Defaults seeds an empty menu in local mode.
	Defaults []string `mapstructure:"defaults" default:"Kung Pao Chicken,Mapo Tofu,Sweet and Sour Pork,Yu Xiang Shredded Pork,Tomato and Egg Stir-fry,Twice-Cooked Pork"`
}

const (
	// ModeSource reconciles a fetched baseline against staged changes.
	ModeSource = "source"
	// ModeLocal uses the staging store as the only source of truth.
	ModeLocal = "local"
)

// IsValidMode checks if the configured mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeSource, ModeLocal:
		return true
	default:
		return false
	}
}
