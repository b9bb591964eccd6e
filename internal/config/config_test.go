package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		errIs   error
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{
				APIBaseURL: "https://pos.example.com/api",
				PageSize:   100,
				RetryDelay: time.Second,
			},
		},
		{
			name:    "missing base url",
			config:  Config{PageSize: 100},
			wantErr: true,
			errIs:   common.ErrMissingConfig,
		},
		{
			name:    "zero page size",
			config:  Config{APIBaseURL: "https://pos.example.com/api"},
			wantErr: true,
			errIs:   common.ErrInvalidConfig,
		},
		{
			name: "negative retry delay",
			config: Config{
				APIBaseURL: "https://pos.example.com/api",
				PageSize:   10,
				RetryDelay: -time.Second,
			},
			wantErr: true,
			errIs:   common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("api.base_url", "https://pos.example.com/api")
	viper.Set("api.page_size", 25)
	viper.Set("export.dir", "/tmp/reports")

	cfg := Load()

	assert.Equal(t, "https://pos.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "/tmp/reports", cfg.ExportDir)
	// Untouched keys keep defaults.
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("TALLY_TEST_DIR", "/srv/data")

	assert.Equal(t, "/srv/data/exports", ExpandPath("$TALLY_TEST_DIR/exports"))
	assert.Equal(t, "", ExpandPath(""))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "exports"), ExpandPath("~/exports"))
}
