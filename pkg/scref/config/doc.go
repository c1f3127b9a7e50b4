// Package config provides map-backed configuration for scref
// registries and journal stores.
//
// A Config wraps a map[string]any loaded from YAML or JSON and offers
// typed accessors that fall back to defaults instead of erroring:
//
//	cfg, err := config.FromFile("registry.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	capacity := cfg.Int("capacity", 16)
//	journalPath := cfg.String("journal_path", "")
//
// Missing keys and values of the wrong type both yield the default, so
// callers never branch on parse details.
package config
