// Package config provides user configuration management for bitread.
//
// The configuration is a small YAML file holding the location of the
// prjxray database, logging preferences and the default sampling seed.
// Every value can be overridden by a command-line flag, so the file is
// optional.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/bitread/config.yaml or $HOME/.config/bitread/config.yaml
//   - macOS: $HOME/.config/bitread/config.yaml
//   - Windows: %LOCALAPPDATA%\bitread\config.yaml
//
// # Database Location
//
// When database.dir is not set, the XRAY_DATABASE_DIR environment variable
// is used. This is the variable the prjxray tooling itself exports from its
// settings scripts.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db, err := frames.OpenDatabase(cfg.Database.Dir, logger)
//
// # Thread Safety
//
// Save is protected by a mutex and writes through a temporary file, so a
// crash never leaves a half-written configuration behind.
package config
