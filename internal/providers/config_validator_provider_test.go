package providers

import (
	"pvc/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Counter: structures.CounterConfig{
			RequestURL: "http://example.com/wp-admin/admin-ajax.php",
			Nonce:      "abc",
			PostID:     42,
			Mode:       "admin_ajax",
			Timeout:    10 * time.Second,
		},
		Jar: structures.JarConfig{
			Type:     "file",
			FilePath: "/tmp/pvc.jar",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_RestMode(t *testing.T) {
	c := validConfig()
	c.Counter.Mode = "rest_api"
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyRequestURL(t *testing.T) {
	c := validConfig()
	c.Counter.RequestURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidMode(t *testing.T) {
	c := validConfig()
	c.Counter.Mode = "xmlrpc"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidJarType(t *testing.T) {
	c := validConfig()
	c.Jar.Type = "local_storage"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_FileJarWithoutPath(t *testing.T) {
	c := validConfig()
	c.Jar.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MemoryJarWithoutPath(t *testing.T) {
	c := validConfig()
	c.Jar.Type = "memory"
	c.Jar.FilePath = ""
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
