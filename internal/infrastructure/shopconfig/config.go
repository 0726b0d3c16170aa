package shopconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

const defaultConfigFile = "data/config.json"

// Store holds the shop configuration document and persists edits atomically.
// Settings updates happen at runtime, so reads and writes are guarded by a
// RWMutex.
type Store struct {
	mu         sync.RWMutex
	configFile string
	data       entities.ShopConfig
}

var _ interfaces.IShopConfigStore = (*Store)(nil)

// Load reads the configuration from configFile, falling back to (and
// persisting) the defaults when the file is absent or unreadable.
func Load(configFile string) *Store {
	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile == "" {
		configFile = defaultConfigFile
	}

	s := &Store{configFile: configFile}

	raw, err := os.ReadFile(configFile)
	if err == nil {
		var cfg entities.ShopConfig
		if uerr := json.Unmarshal(raw, &cfg); uerr == nil {
			s.data = cfg
			return s
		}
		log.Printf("[config][store] invalid config file %s, using defaults", configFile)
	}

	s.data = DefaultConfig()
	if serr := s.save(); serr != nil {
		log.Printf("[config][store] failed persisting default config: %v", serr)
	}
	return s
}

// Version returns the first 16 hex characters of a SHA-256 over the canonical
// JSON form of the configuration. Map keys are emitted in sorted order by
// encoding/json, so the digest is stable across loads and edits that change
// nothing.
func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fingerprint(s.data)
}

func fingerprint(cfg entities.ShopConfig) string {
	payload, err := json.Marshal(cfg)
	if err != nil {
		payload = []byte("{}")
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) Material(key string) (entities.Material, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.data.Materials[key]
	return m, ok
}

func (s *Store) PrintQuality(key string) (entities.PrintQuality, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.data.PrintQuality[key]
	return q, ok
}

func (s *Store) Printer(key string) (entities.Printer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.Printers[key]
	return p, ok
}

func (s *Store) PostProcessing(key string) (entities.PostProcessing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pp, ok := s.data.PostProcessing[key]
	return pp, ok
}

func (s *Store) Pricing() entities.PricingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Pricing
}

func (s *Store) FileSettings() entities.FileSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.FileSettings
}

func (s *Store) Slicer() entities.SlicerSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Slicer
}

func (s *Store) Snapshot() entities.ShopConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Store) EnabledPrinters() map[string]entities.Printer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entities.Printer, len(s.data.Printers))
	for key, p := range s.data.Printers {
		if p.Enabled {
			out[key] = p
		}
	}
	return out
}

func (s *Store) EnabledPostProcessing() map[string]entities.PostProcessing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entities.PostProcessing, len(s.data.PostProcessing))
	for key, pp := range s.data.PostProcessing {
		if pp.Enabled {
			out[key] = pp
		}
	}
	return out
}

// Replace swaps the whole configuration document and persists it. Quotes
// priced under the previous version become stale: their stored fingerprint no
// longer matches Version().
func (s *Store) Replace(cfg entities.ShopConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.data
	s.data = cfg
	if err := s.save(); err != nil {
		s.data = previous
		return err
	}
	return nil
}

// save writes the document to a temp file in the same directory and renames
// it over the final path. Callers hold the write lock.
func (s *Store) save() error {
	payload, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.configFile), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp := s.configFile + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, s.configFile); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
