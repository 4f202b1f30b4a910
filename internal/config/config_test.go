package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("APP_ROOT", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.True(t, filepath.IsAbs(cfg.Data.Path))
	assert.Equal(t, filepath.Join("data", "dummyData.json"), filepath.Join(filepath.Base(filepath.Dir(cfg.Data.Path)), filepath.Base(cfg.Data.Path)))
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ROOT", root)
	t.Setenv("DATA_FILE", "fixtures/reps.json")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, filepath.Join(root, "fixtures", "reps.json"), cfg.Data.Path)
}

func TestResolveDataPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "data.json")

	tests := []struct {
		name string
		root string
		file string
		want string
	}{
		{name: "caminho absoluto ignora a raiz", root: "/srv/app", file: abs, want: abs},
		{name: "caminho relativo usa a raiz", root: "/srv/app", file: "data/dummyData.json", want: filepath.Join("/srv/app", "data", "dummyData.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDataPath(tt.root, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
