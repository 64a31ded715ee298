package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/listenupapp/readconfig/internal/config"
	"github.com/listenupapp/readconfig/internal/logger"
	"github.com/listenupapp/readconfig/internal/store"
	"github.com/listenupapp/readconfig/internal/store/sqlite"
)

// ValueStoreHandle wraps the preference backend with shutdown capability.
type ValueStoreHandle struct {
	store.ValueStore
	Backend  string
	Degraded bool // true when the configured backend failed and memory is used instead
}

// Shutdown implements do.Shutdownable.
func (h *ValueStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideValueStore provides the configured preference backend.
// An unopenable backend degrades to an in-memory store so preferences stay
// usable for the session.
func ProvideValueStore(i do.Injector) (*ValueStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	backend, err := openValueStore(cfg.Storage, log)
	if err != nil {
		log.WithError(err).WithField("backend", cfg.Storage.Backend).
			Error("Preference storage unavailable, falling back to memory")
		return &ValueStoreHandle{ValueStore: store.NewMemory(), Backend: config.BackendMemory, Degraded: true}, nil
	}

	return &ValueStoreHandle{ValueStore: backend, Backend: cfg.Storage.Backend}, nil
}

func openValueStore(cfg config.StorageConfig, log *logger.Logger) (store.ValueStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataPath, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		return sqlite.Open(filepath.Join(cfg.DataPath, "preferences.db"), log.Logger)
	default:
		return store.OpenBadger(filepath.Join(cfg.DataPath, "db"), log.Logger)
	}
}
