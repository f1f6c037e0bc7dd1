package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
)

// Configuration keys.
const (
	KeyAuthor       = "author"
	KeyLicense      = "license"
	KeyCategory     = "category"
	KeyTemplatesDir = "templates_dir"
)

// FlagConfig names the flag that points at a config file.
const FlagConfig = "config"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"author":        KeyAuthor,
	"license":       KeyLicense,
	"category":      KeyCategory,
	"templates-dir": KeyTemplatesDir,
}

// Settings holds the resolved configuration.
type Settings struct {
	Author       string          `mapstructure:"author"`
	License      string          `mapstructure:"license"`
	Category     plugin.Category `mapstructure:"category"`
	TemplatesDir string          `mapstructure:"templates_dir"`
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Read prompt defaults from a YAML, TOML, or JSON file")
	fs.String("author", "", "Default answer for the author question")
	fs.String("license", "", "Default answer for the license question")
	fs.String("category", "", "Default plugin category (common or scraper)")
	fs.String("templates-dir", "", "Use template trees from this directory instead of the built-in ones")
}

// Load resolves settings from defaults, the file named by the --config flag,
// and the flags in fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyAuthor, plugin.DefaultAuthor)
	v.SetDefault(KeyLicense, plugin.DefaultLicense)
	v.SetDefault(KeyCategory, string(plugin.Categories[0]))
	v.SetDefault(KeyTemplatesDir, "")

	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			file := f.Value.String()
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", file, err)
			}
		}

		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if s.TemplatesDir != "" {
		abs, err := filepath.Abs(s.TemplatesDir)
		if err != nil {
			return nil, fmt.Errorf("resolving templates directory %s: %w", s.TemplatesDir, err)
		}
		s.TemplatesDir = abs
	}

	return &s, nil
}
