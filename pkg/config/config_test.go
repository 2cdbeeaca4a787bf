package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	content := `input: Sources/Router.swift
output: Generated/Router.swift
emitter: builder
template_dirs:
  - templates
watch:
  debounce: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sources/Router.swift", cfg.Input)
	assert.Equal(t, "Generated/Router.swift", cfg.OutputPath())
	assert.Equal(t, generator.EmitterBuilder, cfg.Emitter)
	assert.Equal(t, []string{"templates"}, cfg.TemplateDirs)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_SearchesWorkingDir(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "rgen.yaml"), []byte("input: Router.swift\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Router.swift", cfg.Input)
	assert.Equal(t, generator.EmitterTemplate, cfg.Emitter)
	assert.Equal(t, generator.DefaultTemplateDirs, cfg.TemplateDirs)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	chdir(t, t.TempDir())

	v := New("")
	found, err := Read(v)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = Decode(v)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RGEN_INPUT", "Env.swift")
	t.Setenv("RGEN_EMITTER", "builder")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Env.swift", cfg.Input)
	assert.Equal(t, generator.EmitterBuilder, cfg.Emitter)
}

func TestLoad_BindersOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: File.swift\nemitter: template\n"), 0644))

	cfg, err := Load(path,
		func(v *viper.Viper) error { v.Set("input", "First.swift"); return nil },
		func(v *viper.Viper) error { v.Set("input", "Second.swift"); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, "Second.swift", cfg.Input)
	assert.Equal(t, generator.EmitterTemplate, cfg.Emitter)
}

func TestLoad_BinderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: File.swift\n"), 0644))

	boom := errors.New("boom")
	_, err := Load(path, func(*viper.Viper) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{"valid", func(c *Config) { c.Input = "Router.swift" }, false, nil},
		{"missing input", func(c *Config) {}, true, ErrMissingInput},
		{"unknown emitter", func(c *Config) { c.Input = "Router.swift"; c.Emitter = "jinja" }, true, nil},
		{"empty template dir", func(c *Config) { c.Input = "Router.swift"; c.TemplateDirs = []string{""} }, true, nil},
		{"negative debounce", func(c *Config) { c.Input = "Router.swift"; c.Watch.Debounce = -time.Second }, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGeneratorConfig(t *testing.T) {
	cfg := Default()
	cfg.Input = "Sources/App/Router.swift"
	cfg.Template = "custom"

	gc := cfg.GeneratorConfig()
	assert.Equal(t, "Sources/App/Router.swift", gc.Input)
	assert.Equal(t, filepath.Join("Sources/App", generator.DefaultOutputName), gc.Output)
	assert.Equal(t, "custom", gc.Template)
	assert.Equal(t, generator.EmitterTemplate, gc.Emitter)
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgen.yaml")
	cfg := Default()
	cfg.Input = "Router.swift"
	cfg.Output = "Out.swift"

	require.NoError(t, Write(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Input, loaded.Input)
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.Watch.Debounce, loaded.Watch.Debounce)
}
