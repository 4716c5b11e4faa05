package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

const sample = `
[server]
http_port = 9090

[logs]
level = "debug"

[database]
host = "localhost"
user = "petcare"
password = "from-file"
dbname = "petcare"

[facility]
id = "f1"
name = "Happy Paws"

[[modules.disabled]]
service = "boarding"
reason = "renovation"

[[modules.disabled]]
facility_id = "f2"
service = "grooming"

[[catalog.boarding_rooms]]
id = "suite"
name = "Suite"
price = 95.0

[[catalog.training_programs]]
id = "agility"
name = "Agility"
price = 110.0
sessions = 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Sessions.IdleTimeoutMinutes)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "host=localhost port=5432 user=petcare dbname=petcare sslmode=disable password=from-env", cfg.Database.DSN())
}

func TestConfig_ModuleSettings(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	settings := cfg.ModuleSettings()
	require.Len(t, settings, 2)
	assert.Equal(t, domain.ModuleSetting{FacilityID: "f1", Service: domain.ServiceBoarding, Disabled: true, Reason: "renovation"}, settings[0])
	assert.Equal(t, "f2", settings[1].FacilityID)
}

func TestCatalogConfig_Rates(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	rates := cfg.Catalog.Rates()
	require.Len(t, rates.BoardingRooms, 1)
	assert.Equal(t, 95.0, rates.BoardingRooms[0].Price)
	require.Len(t, rates.TrainingPrograms, 1)
	assert.Equal(t, 5, rates.TrainingPrograms[0].Sessions)
	assert.Empty(t, rates.DaycareTypes)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("missing facility", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\nhost = \"db\"\ndbname = \"petcare\"\n"))
		assert.ErrorContains(t, err, "facility.id")
	})

	t.Run("unknown disabled service", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
host = "db"
dbname = "petcare"
[facility]
id = "f1"
[[modules.disabled]]
service = "spa"
`))
		assert.ErrorContains(t, err, "spa")
	})
}
