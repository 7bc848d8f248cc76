package domain

// Backend names a storage technology for the active-round slot.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Valid reports whether b is a known backend.
func (b Backend) Valid() bool {
	switch b {
	case BackendFile, BackendBolt, BackendSQLite, BackendMemory:
		return true
	}
	return false
}

// Config represents the ForeCounter configuration loaded from forecounter.yaml.
type Config struct {
	Home    string
	Store   StoreConfig
	Logging LoggingConfig
}

type StoreConfig struct {
	Backend Backend
	Path    string // empty means the backend's default file under Home
}

type LoggingConfig struct {
	Debug bool
}

// DefaultConfig provides sane defaults if forecounter.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{Backend: BackendFile},
	}
}
