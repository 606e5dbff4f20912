package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_CONNECTION_STRING", " postgres://localhost/plan ")
	t.Setenv("PLAN_CATALOG_FILE", "plan.yaml")
	t.Setenv("PLAN_PAGE_URL", "")
	t.Setenv("PLAN_SINGLE_SELECTION", "true")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		DatabaseConnectionString: "postgres://localhost/plan",
		CatalogFile:              "plan.yaml",
		SingleSelection:          true,
	}, config)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLAN_CATALOG_FILE=from-dotenv.yaml\nPLAN_PAGE_URL=https://example.edu/plan\n"), 0o600))

	t.Setenv("PLAN_CATALOG_FILE", "from-env.yaml")
	t.Setenv("PLAN_SINGLE_SELECTION", "")
	// Registered so t.Setenv restores it after godotenv sets it
	t.Setenv("PLAN_PAGE_URL", "")
	require.NoError(t, os.Unsetenv("PLAN_PAGE_URL"))

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.yaml", config.CatalogFile)
	assert.Equal(t, "https://example.edu/plan", config.PlanPageURL)
	assert.False(t, config.SingleSelection)
}

func TestLoadRejectsInvalidSingleSelection(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PLAN_SINGLE_SELECTION", "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, "PLAN_SINGLE_SELECTION")
}
