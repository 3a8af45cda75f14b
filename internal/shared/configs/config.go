package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Provider    ProviderConfig    `mapstructure:"provider" validate:"required"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds the embedded SQLite configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// FileStorageConfig holds the blob storage root used for raw provider
// response archiving, and how long archived payloads are retained.
type FileStorageConfig struct {
	RootDir       string `mapstructure:"root_dir" validate:"required"`
	RetentionDays int    `mapstructure:"retention_days" validate:"required,min=1"`
}

// ProviderConfig holds the statistics provider (Sentinel Hub Statistical
// API) client configuration. AuthToken is a pre-issued bearer token; token
// refresh is handled outside this service.
type ProviderConfig struct {
	BaseURL         string  `mapstructure:"base_url" validate:"required,url"`
	AuthToken       string  `mapstructure:"auth_token"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"required,min=1"`
	RequestsPerMin  int     `mapstructure:"requests_per_minute" validate:"required,min=1"`
	ResolutionMeter float64 `mapstructure:"resolution_meters" validate:"required,gt=0"`
}

// SchedulerConfig holds the periodic ingestion scheduler configuration.
// SearchBounds is a WKT POLYGON; it is parsed per run, so a malformed value
// surfaces as a distinct, alertable run failure rather than a startup crash.
type SchedulerConfig struct {
	Enabled              bool    `mapstructure:"enabled"`
	IntervalHours        int     `mapstructure:"interval_hours" validate:"required,min=1"`
	LookbackDays         int     `mapstructure:"lookback_days" validate:"required,min=1"`
	HistoricalDays       int     `mapstructure:"historical_days" validate:"required,min=1"`
	ProcessHistorical    bool    `mapstructure:"process_historical"`
	RegionName           string  `mapstructure:"region_name" validate:"required"`
	SearchBounds         string  `mapstructure:"search_bounds" validate:"required"`
	MaxCloudCoveragePct  float64 `mapstructure:"max_cloud_coverage" validate:"min=0,max=100"`
	AggregationPeriodISO string  `mapstructure:"aggregation_period" validate:"required"`
}
