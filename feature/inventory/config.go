package inventory

import "time"

// SyncConfig holds the orchestration policy knobs.
type SyncConfig struct {
	// StalenessHours is the maximum snapshot age before a sync call
	// triggers a fresh fetch instead of answering from the stored snapshot.
	StalenessHours int `mapstructure:"staleness_hours" default:"6"`
	// RetentionDays is the GDPR retention window. A snapshot becomes
	// eligible for deletion this long after the user's last activity.
	RetentionDays int `mapstructure:"retention_days" default:"365"`
	// CooldownMinutes is how long a user stays in rate-limit cooldown after
	// Steam answers 429; sync calls during cooldown fail fast without a
	// network call.
	CooldownMinutes int `mapstructure:"cooldown_minutes" default:"15"`
}

// Staleness returns the staleness threshold as a duration.
func (c SyncConfig) Staleness() time.Duration {
	return time.Duration(c.StalenessHours) * time.Hour
}

// Retention returns the retention window as a duration.
func (c SyncConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Cooldown returns the rate-limit cooldown as a duration.
func (c SyncConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}
