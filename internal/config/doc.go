// Package config provides the settings of the ustring command line tool.
//
// Settings are resolved from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← USTRING_SECTION_KEY
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/ustring/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML, picked by extension. A missing file
// is not an error.
//
// # Basic Usage
//
//	cfg, err := config.Load(
//		config.WithFile(path),
//		config.WithOverride("log.level", "debug"),
//	)
//	if err != nil {
//		return err
//	}
//	parts := s.Split(cfg.Split.Separator, cfg.Split.RemoveEmpty)
//
// Unknown settings and out of range values are reported by Load.
package config
