package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool

	RequestURL string
	Nonce      string
	PostID     int
	Mode       string
}

type CounterConfig struct {
	RequestURL string        `yaml:"requestURL" validate:"required|fullUrl"`
	PageURL    string        `yaml:"pageURL"`
	Nonce      string        `yaml:"nonce"`
	PostID     int           `yaml:"postID"`
	Mode       string        `yaml:"mode" validate:"required|in:rest_api,admin_ajax"`
	Multisite  int           `yaml:"multisite"`
	Path       string        `yaml:"path"`
	Domain     string        `yaml:"domain"`
	Timeout    time.Duration `yaml:"timeout"`
}

type JarConfig struct {
	Type       string `yaml:"type" validate:"required|in:file,memory,disabled"`
	FilePath   string `yaml:"filePath"`
	MemorySize int    `yaml:"memorySize"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Counter CounterConfig `yaml:"counter"`
	Jar     JarConfig     `yaml:"jar"`
	Logger  LoggerConfig  `yaml:"logger"`
	Metrics MetricsConfig `yaml:"metrics"`
}
