package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "timeedit.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.True(t, cfg.FilterEmpty)
	require.False(t, cfg.UseEndDate)

	// The default file was written with owner-only permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeedit.yaml")

	want := &Config{
		BaseURL:          "https://cloud.timeedit.net/other/web/public01/",
		FilterEmpty:      true,
		FilterToSemester: true,
		StartDate:        "2024-01-01",
		EndDate:          "2024-06-30",
		UseEndDate:       true,
		UseKTHPlaces:     true,
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNormalizeFillsBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()
	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
