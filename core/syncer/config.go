package syncer

// Config holds configuration for sync orchestration.
type Config struct {
	// MasterdataTTLSeconds is how long a master-data snapshot is cached
	// before the next sync rebuilds it from the database. Zero disables
	// caching.
	MasterdataTTLSeconds int `mapstructure:"masterdata_ttl_seconds" default:"300"`
}
