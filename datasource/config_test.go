package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"TEAM_ID", "KEY_ID", "SERVICE_ID", "KEY_FILE",
	"WEATHERKIT_LANGUAGE", "WEATHERKIT_TIMEZONE", "WEATHERKIT_UNITS",
	"WEATHERKIT_COUNTRY", "WEATHERKIT_DISPLAY_TIMEZONE", "WEATHERKIT_TIMEOUT",
	"LOG_LEVEL",
}

// clearConfigEnv blanks every variable LoadConfig reads; empty counts as unset
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TEAM_ID", "TEAM1")
	t.Setenv("KEY_ID", "KEY1")
	t.Setenv("SERVICE_ID", "SVC1")
	t.Setenv("KEY_FILE", "/secrets/key.p8")
	t.Setenv("WEATHERKIT_LANGUAGE", "en")
	t.Setenv("WEATHERKIT_TIMEOUT", "3s")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "TEAM1", config.Identity.TeamID)
	assert.Equal(t, "KEY1", config.Identity.KeyID)
	assert.Equal(t, "SVC1", config.Identity.ServiceID)
	assert.Equal(t, "/secrets/key.p8", config.Identity.KeyFile)
	assert.Equal(t, "en", config.Language)
	assert.Equal(t, 3*time.Second, config.Timeout)

	// untouched defaults
	assert.Equal(t, "Asia/Tokyo", config.Timezone)
	assert.Equal(t, "metric", config.Units)
	assert.Equal(t, "JP", config.Country)
}

func TestLoadConfig_KeyFileDefaultsToKeyID(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TEAM_ID", "TEAM1")
	t.Setenv("KEY_ID", "ABC123")
	t.Setenv("SERVICE_ID", "SVC1")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "AuthKey_ABC123.p8", config.Identity.KeyFile)
}

func TestLoadConfig_MissingIdentity(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KEY_ID", "KEY1")

	config, err := LoadConfig("")
	assert.Nil(t, config)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"TEAM_ID", "SERVICE_ID"}, configErr.Missing)
	assert.EqualError(t, err, "missing required configuration: TEAM_ID, SERVICE_ID")
}

func TestLoadConfig_NothingSet(t *testing.T) {
	clearConfigEnv(t)

	_, err := LoadConfig("")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"TEAM_ID", "KEY_ID", "SERVICE_ID", "KEY_FILE"}, configErr.Missing)
}

func TestLoadConfig_YAMLFileWithEnvironmentOverride(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVICE_ID", "com.example.override")

	path := filepath.Join(t.TempDir(), "weatherkit.yaml")
	content := `
identity:
  teamID: TEAMYAML
  keyID: KEYYAML
  serviceID: com.example.yaml
  keyFile: keys/AuthKey_KEYYAML.p8
units: imperial
displayTimezone: America/New_York
timeout: 2500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "TEAMYAML", config.Identity.TeamID)
	assert.Equal(t, "com.example.override", config.Identity.ServiceID)
	assert.Equal(t, "keys/AuthKey_KEYYAML.p8", config.Identity.KeyFile)
	assert.Equal(t, "imperial", config.Units)
	assert.Equal(t, "America/New_York", config.DisplayTimezone)
	assert.Equal(t, 2500*time.Millisecond, config.Timeout)
	assert.Equal(t, "ja", config.Language)
}

func TestLoadConfig_EmptyCountryOnlyClearableFromYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TEAM_ID", "TEAM1")
	t.Setenv("KEY_ID", "KEY1")
	t.Setenv("SERVICE_ID", "SVC1")

	// WEATHERKIT_COUNTRY is already set to "" here and leaves the default alone
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "JP", config.Country)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("country: \"\"\n"), 0o600))

	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, config.Country)
}

func TestLoadConfig_BadInputs(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearConfigEnv(t)
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("identity: [unterminated"), 0o600))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("WEATHERKIT_TIMEOUT", "soon")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "invalid WEATHERKIT_TIMEOUT")
	})
}
