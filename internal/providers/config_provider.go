package providers

import (
	"fmt"
	"path/filepath"
	"pvc/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("counter.mode", "admin_ajax")
	v.SetDefault("counter.path", "/")
	v.SetDefault("counter.timeout", 10*time.Second)
	v.SetDefault("jar.type", "file")
	v.SetDefault("jar.memorySize", 1)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)

	v.BindEnv("logger.level", "PVC_LOG_LEVEL")
	v.BindEnv("counter.requestURL", "PVC_REQUEST_URL")
	v.BindEnv("counter.nonce", "PVC_NONCE")
	v.BindEnv("counter.mode", "PVC_MODE")
	v.BindEnv("counter.multisite", "PVC_MULTISITE")
	v.BindEnv("jar.filePath", "PVC_JAR_PATH")
	v.BindEnv("metrics.enabled", "PVC_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	applyFlags(&conf, flags)

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PostViewsCounter"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

// applyFlags lets command line values win over the file and the environment.
func applyFlags(conf *structures.Config, flags *structures.CliFlags) {
	if flags.RequestURL != "" {
		conf.Counter.RequestURL = flags.RequestURL
	}
	if flags.Nonce != "" {
		conf.Counter.Nonce = flags.Nonce
	}
	if flags.PostID > 0 {
		conf.Counter.PostID = flags.PostID
	}
	if flags.Mode != "" {
		conf.Counter.Mode = flags.Mode
	}
}
