// Package config handles configuration management for hilite.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. the embedded defaults.toml
//  2. the user config, $XDG_CONFIG_HOME/hilite/config.toml
//  3. the project config, .hilite.toml or .hilite.yaml in the working directory
//  4. HILITE_* environment variables (HILITE_RENDER_MODE sets render.mode)
//  5. explicit overrides, usually command-line flags
//
// Custom palettes can be declared inline under [palettes.<name>] or loaded
// from the YAML file named by palettes_file. Both are validated and merged
// over the built-in palettes.
package config
