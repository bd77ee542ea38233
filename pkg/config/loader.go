package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui"
)

const (
	// EnvPrefix prefixes every environment variable read by the loader
	EnvPrefix = "HILITE_"

	userConfigFile = "hilite/config.toml"
)

// projectConfigFiles are tried in order; the first one found is loaded
var projectConfigFiles = []string{".hilite.toml", ".hilite.yaml", ".hilite.yml"}

// Options selects which layers Load reads. The zero value loads the
// embedded defaults only.
type Options struct {
	// UserConfig is the path of the user config file. Empty skips it.
	UserConfig string
	// ProjectDir is searched for a project config file. Empty skips it.
	ProjectDir string
	// EnvPrefix enables environment overrides. Empty skips them.
	EnvPrefix string
	// Overrides are flattened keys ("render.mode") applied last.
	Overrides map[string]interface{}
	// Fs reads palettes_file. Defaults to the OS filesystem.
	Fs afero.Fs
}

// DefaultOptions returns the options used by the command line: the XDG
// user config, the working directory and HILITE_* variables.
func DefaultOptions() Options {
	opts := Options{
		ProjectDir: ".",
		EnvPrefix:  EnvPrefix,
		Fs:         afero.NewOsFs(),
	}
	xdg.Reload()
	if path, err := xdg.SearchConfigFile(userConfigFile); err == nil {
		opts.UserConfig = path
	}
	return opts
}

// Default returns the configuration built from the embedded defaults alone.
func Default() *Config {
	cfg, err := Load(Options{})
	if err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Load builds the effective configuration from the layers selected by opts,
// then loads and validates custom palettes.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load_config")
	defer done()

	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config
	if opts.UserConfig != "" {
		if err := loadFile(k, opts.UserConfig); err != nil {
			return nil, err
		}
		sources = append(sources, opts.UserConfig)
	}

	// 3. Project config
	if opts.ProjectDir != "" {
		if path := findProjectConfig(opts.ProjectDir); path != "" {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			sources = append(sources, path)
		}
	}

	// 4. Environment
	if opts.EnvPrefix != "" {
		prefix := opts.EnvPrefix
		err := k.Load(env.Provider(prefix, ".", func(s string) string {
			return envKey(prefix, s)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	if err := checkEnums(k); err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.sources = sources
	cfg.Render.Palette = strings.ToLower(strings.TrimSpace(cfg.Render.Palette))

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	registry, err := buildRegistry(&cfg, fs)
	if err != nil {
		return nil, err
	}
	cfg.registry = registry

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Str("mode", cfg.Render.Mode.String()).
		Str("palette", cfg.Render.Palette).
		Str("format", cfg.Output.Format.String()).
		Int("palettes", registry.Len()).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func findProjectConfig(dir string) string {
	for _, name := range projectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// envKey maps HILITE_RENDER_MODE to render.mode. Only the first underscore
// separates section from key, so HILITE_PALETTES_FILE stays palettes_file.
func envKey(prefix, s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, prefix))
	if key == "palettes_file" {
		return key
	}
	return strings.Replace(key, "_", ".", 1)
}

// checkEnums reports invalid mode and format names with their own error
// codes rather than as a generic decode failure.
func checkEnums(k *koanf.Koanf) error {
	if raw := k.String("render.mode"); raw != "" {
		if _, err := types.ParseMode(raw); err != nil {
			return errors.Wrapf(err, errors.ErrModeInvalid, "invalid render mode %q", raw).
				WithDetail("valid", types.AllModes)
		}
	}
	if raw := k.String("output.format"); raw != "" {
		if _, err := ui.ParseFormat(raw); err != nil {
			return errors.Wrapf(err, errors.ErrFormatInvalid, "invalid output format %q", raw)
		}
	}
	return nil
}

func buildRegistry(cfg *Config, fs afero.Fs) (*palette.Registry, error) {
	registry := palette.Default()
	if cfg.PalettesFile != "" {
		fromFile, err := palette.LoadFile(fs, cfg.PalettesFile)
		if err != nil {
			return nil, err
		}
		registry = registry.With(overlay(registry, fromFile)...)
	}
	inline, err := cfg.inlinePalettes()
	if err != nil {
		return nil, err
	}
	return registry.With(overlay(registry, inline)...), nil
}

// overlay layers each custom palette over the registered palette of the
// same name, so redefining a few codes of a built-in keeps the rest.
func overlay(registry *palette.Registry, custom []palette.Palette) []palette.Palette {
	merged := make([]palette.Palette, len(custom))
	for i, p := range custom {
		if registry.Has(p.Name) {
			p = registry.Get(p.Name).Overlay(p)
		}
		merged[i] = p
	}
	return merged
}
