package configs

// Config holds all configuration for the application. Top level keys keep the
// names of the legacy JSON config (REPORT_SIZE, REPORT_DIR, LOG_DIR, OUTPUT_LOG);
// keys are case-insensitive.
type Config struct {
	ReportSize   int    `mapstructure:"report_size" validate:"min=1"`
	ReportDir    string `mapstructure:"report_dir" validate:"required"`
	LogDir       string `mapstructure:"log_dir" validate:"required"`
	OutputLog    string `mapstructure:"output_log"`    // empty: log to stdout
	TemplatePath string `mapstructure:"template_path"` // empty: embedded template

	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Source  SourceConfig  `mapstructure:"source" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// SourceConfig describes the rotated log file names.
type SourceConfig struct {
	ProductMarker string `mapstructure:"product_marker" validate:"required"`
	PlainMarker   string `mapstructure:"plain_marker" validate:"required"`
	CompressedExt string `mapstructure:"compressed_ext" validate:"required,startswith=."`
	DateLayout    string `mapstructure:"date_layout" validate:"required,timelayout"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // node_exporter textfile, written after each run
}

// ServerConfig holds report server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
