package config

// DefaultPath is the configuration file looked up in the working directory
// when no --config flag is given.
const DefaultPath = ".uikit.yaml"

// Config is the root of the uikit configuration file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	VRT     VRTConfig     `yaml:"vrt"`
	Preview PreviewConfig `yaml:"preview"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// VRTConfig configures the visual regression runner.
type VRTConfig struct {
	Port       string   `yaml:"port" validate:"required,port"`
	Binary     string   `yaml:"binary" validate:"required"`
	EnvFile    string   `yaml:"env_file"`
	AppCodeEnv string   `yaml:"app_code_env" validate:"required,env_name"`
	ExtraArgs  []string `yaml:"extra_args"`
}

// PreviewConfig configures the terminal preview.
type PreviewConfig struct {
	Theme string `yaml:"theme" validate:"omitempty,oneof=default dark light"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:         "info",
			HumanReadable: true,
		},
		VRT: VRTConfig{
			Port:       "9001",
			Binary:     "chromatic",
			EnvFile:    ".env",
			AppCodeEnv: "CHROMATIC_APP_CODE",
		},
		Preview: PreviewConfig{
			Theme: "default",
		},
	}
}
