// Package config loads rgen.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
)

// FileName is the config file name without extension.
const FileName = "rgen"

// EnvPrefix prefixes environment overrides (e.g., RGEN_INPUT).
const EnvPrefix = "RGEN"

// ErrMissingInput is returned when no input file is configured.
var ErrMissingInput = errors.New("missing input file: use -i <inputfile> or set 'input' in rgen.yaml")

// Config represents rgen.yaml.
type Config struct {
	Input        string      `mapstructure:"input" yaml:"input" json:"input" validate:"required"`
	Output       string      `mapstructure:"output" yaml:"output,omitempty" json:"output,omitempty"`
	Template     string      `mapstructure:"template" yaml:"template,omitempty" json:"template,omitempty"`
	TemplateDirs []string    `mapstructure:"template_dirs" yaml:"template_dirs,omitempty" json:"template_dirs,omitempty" validate:"dive,required"`
	Emitter      string      `mapstructure:"emitter" yaml:"emitter" json:"emitter" validate:"oneof=template builder"`
	Watch        WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// WatchConfig represents the watch section of rgen.yaml.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce" validate:"gte=0"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TemplateDirs: append([]string(nil), generator.DefaultTemplateDirs...),
		Emitter:      generator.EmitterTemplate,
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// New returns a viper instance with defaults, env binding and the config
// search path set. An explicit file overrides the search path.
func New(file string) *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("template_dirs", d.TemplateDirs)
	v.SetDefault("emitter", d.Emitter)
	v.SetDefault("watch.debounce", d.Watch.Debounce)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys without defaults are only seen by Unmarshal once bound
	for _, key := range []string{"input", "output", "template"} {
		_ = v.BindEnv(key)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// Read loads the config file into v. A missing rgen.yaml is not an error;
// the returned bool reports whether a file was read.
func Read(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", v.ConfigFileUsed(), err)
	}
	return true, nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Binder layers extra sources (typically command flags) over v before it
// is decoded.
type Binder func(v *viper.Viper) error

// Load reads the config file (if any), applies binders in order and decodes
// the result.
func Load(file string, binders ...Binder) (*Config, error) {
	v := New(file)
	if _, err := Read(v); err != nil {
		return nil, err
	}
	for _, bind := range binders {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("failed to bind config: %w", err)
		}
	}
	return Decode(v)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration. A missing input maps to ErrMissingInput.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var msgs []string
	for _, fe := range verrs {
		if fe.Field() == "Input" && fe.Tag() == "required" {
			return ErrMissingInput
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// OutputPath returns the configured output or the default next to the input.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return generator.DefaultOutputPath(c.Input)
}

// GeneratorConfig converts c into a generate run configuration.
func (c *Config) GeneratorConfig() generator.Config {
	return generator.Config{
		Input:        c.Input,
		Output:       c.OutputPath(),
		Emitter:      c.Emitter,
		Template:     c.Template,
		TemplateDirs: c.TemplateDirs,
	}
}

// Write saves c as YAML to path.
func Write(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
