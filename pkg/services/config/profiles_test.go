package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finance-atlas.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeProfiles(t, `[household]
regular_apr = 27.0

[business]
regular_apr = 19.5
format = markdown
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "household", profiles[0].Name)
	assert.InDelta(t, 27.0, profiles[0].RegularAPR, 1e-9)
	assert.Equal(t, domain.FormatConsole, profiles[0].Format)
	assert.Equal(t, "business", profiles[1].Name)
	assert.InDelta(t, 19.5, profiles[1].RegularAPR, 1e-9)
	assert.Equal(t, domain.FormatMarkdown, profiles[1].Format)
}

func TestRegistry_GetProfile(t *testing.T) {
	path := writeProfiles(t, `[household]
regular_apr = 21.9
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "household")

	require.NoError(t, err)
	assert.InDelta(t, 21.9, profile.RegularAPR, 1e-9)
	assert.Equal(t, domain.FormatConsole, profile.Format)
}

func TestRegistry_GetProfile_NotFound(t *testing.T) {
	path := writeProfiles(t, `[household]
regular_apr = 27.0
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistry_InvalidProfiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "apr not a number",
			content: "[broken]\nregular_apr = high\n",
			errText: "regular_apr",
		},
		{
			name:    "apr not positive",
			content: "[broken]\nregular_apr = 0\n",
			errText: "must be positive",
		},
		{
			name:    "unknown format",
			content: "[broken]\nregular_apr = 27.0\nformat = html\n",
			errText: "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(writeProfiles(t, tt.content))
			require.NoError(t, err)

			_, err = registry.GetProfile(context.Background(), "broken")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent.ini"))

	require.Error(t, err)
}
