package ledger

import (
	"fmt"
	"pvc/internal/ledger/interfaces"
	"pvc/internal/providers"
	"pvc/internal/structures"
)

// NewJarProvider builds the configured storage medium. An unreadable file jar
// is logged and replaced by an empty one, the next write overwrites it.
func NewJarProvider(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.JarInterface, error) {
	var jar interfaces.JarInterface

	switch conf.Jar.Type {
	case "file":
		compressor, err := NewZstdCompressor()
		if err != nil {
			return nil, err
		}
		fileJar := NewFileJar(conf.Jar.FilePath, compressor, logger)
		if err := fileJar.LoadFromFile(); err != nil {
			logger.Warnf(providers.TypeLedger, "Unable to restore cookie jar %s, starting empty: %s", conf.Jar.FilePath, err)
		}
		jar = fileJar
	case "memory":
		jar = NewMemoryJar(conf.Jar.MemorySize)
	case "disabled":
		jar = DisabledJar{}
	default:
		return nil, fmt.Errorf("unknown jar type %q", conf.Jar.Type)
	}

	logger.Infof(providers.TypeLedger, "Cookie jar initialized: %s", conf.Jar.Type)
	return NewInstrumentedJar(jar, metrics), nil
}
