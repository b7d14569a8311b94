package config

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Collection CollectionConfig `mapstructure:"collection" validate:"required"`
	Static     StaticConfig     `mapstructure:"static" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// BaseURL prefixes every URL the API returns. Defaults to
	// http://localhost:<port>.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// Storage drivers accepted in DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig selects and configures the catalog store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres memory"`
	URL    string `mapstructure:"url" validate:"required_if=Driver postgres,omitempty,url"`
}

// CollectionConfig controls list responses.
type CollectionConfig struct {
	PageSize int `mapstructure:"page_size" validate:"required,gt=0,lte=1000"`
}

// StaticConfig locates the files served as dinosaur images.
type StaticConfig struct {
	ImageDir string `mapstructure:"image_dir" validate:"required"`
}
