package ledger

import (
	"os"
	"path/filepath"
	"pvc/internal/structures"
	"pvc/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jarConfig(jarType, path string) *structures.Config {
	conf := ledgerConfig()
	conf.Jar = structures.JarConfig{Type: jarType, FilePath: path, MemorySize: 1}
	return conf
}

func TestNewJarProvider_Memory(t *testing.T) {
	jar, err := NewJarProvider(jarConfig("memory", ""), &testutil.MockLogger{}, testutil.NewMockMetrics())
	require.NoError(t, err)

	mj, ok := jar.(*MetricsJar)
	require.True(t, ok)
	assert.IsType(t, &MemoryJar{}, mj.inner)
}

func TestNewJarProvider_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jar.dat")
	jar, err := NewJarProvider(jarConfig("file", path), &testutil.MockLogger{}, testutil.NewMockMetrics())
	require.NoError(t, err)

	mj := jar.(*MetricsJar)
	assert.IsType(t, &FileJar{}, mj.inner)
}

func TestNewJarProvider_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jar.dat")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0600))
	logger := &testutil.MockLogger{}

	jar, err := NewJarProvider(jarConfig("file", path), logger, testutil.NewMockMetrics())
	require.NoError(t, err)

	header, err := jar.CookieHeader()
	require.NoError(t, err)
	assert.Equal(t, "", header)
	assert.Len(t, logger.Entries("warn"), 1)
}

func TestNewJarProvider_Disabled(t *testing.T) {
	jar, err := NewJarProvider(jarConfig("disabled", ""), &testutil.MockLogger{}, testutil.NewMockMetrics())
	require.NoError(t, err)

	_, err = jar.CookieHeader()
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestNewJarProvider_Unknown(t *testing.T) {
	_, err := NewJarProvider(jarConfig("local_storage", ""), &testutil.MockLogger{}, testutil.NewMockMetrics())
	assert.Error(t, err)
}
