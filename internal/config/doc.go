// Package config handles the on-disk configuration for the rfcs CLI.
//
// Configuration lives in a TOML file at $XDG_CONFIG_HOME/rfcs/config.toml
// (falling back to ~/.config/rfcs/config.toml) and is read and written
// through viper. Only the CLI layer touches this package: the core
// scanning and allocation code receives already-resolved values as plain
// parameters and never reads ambient configuration state.
package config
