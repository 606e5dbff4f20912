package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brequin/brequin/plan/config"
)

const testCatalog = "../catalog/testdata/plan.yaml"

func run(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var out bytes.Buffer
	command := newRootCommand(cfg, logger)
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(args)

	err := command.Execute()
	return out.String(), logs.String(), err
}

func TestUnlocksRendersSelection(t *testing.T) {
	out, _, err := run(t, &config.Config{}, "--file", testCatalog, "--select", "Tipografía I")
	require.NoError(t, err)

	assert.Contains(t, out, "Plan de Estudios")
	assert.Contains(t, out, "● Tipografía I")
	assert.Contains(t, out, "✓ Tipografía II")
	assert.Contains(t, out, "Materia seleccionada")
}

func TestUnlocksUsesConfiguredCatalogFile(t *testing.T) {
	out, _, err := run(t, &config.Config{CatalogFile: testCatalog}, "-s", "Morfología I", "-s", "Tipografía II")
	require.NoError(t, err)

	assert.Contains(t, out, "Materias seleccionadas (2)")
	assert.Contains(t, out, "✓ Diseño II")
}

func TestUnlocksSingleSelection(t *testing.T) {
	out, _, err := run(t, &config.Config{}, "--file", testCatalog, "--single", "-s", "Morfología I", "-s", "Tipografía I")
	require.NoError(t, err)

	assert.Contains(t, out, "● Tipografía I")
	assert.NotContains(t, out, "● Morfología I")
	assert.Contains(t, out, "Materia seleccionada")
}

func TestUnlocksWarnsAboutUnknownSubjects(t *testing.T) {
	out, logs, err := run(t, &config.Config{}, "--file", testCatalog, "-s", "Historia")
	require.NoError(t, err)

	assert.Contains(t, logs, "Selected subject is not in the catalog")
	assert.Contains(t, out, "Historia")
}

func TestUnlocksWithoutCatalog(t *testing.T) {
	_, _, err := run(t, &config.Config{}, "-s", "Morfología I")
	assert.ErrorContains(t, err, "no catalog")
}

func TestUnlocksRejectsArguments(t *testing.T) {
	_, _, err := run(t, &config.Config{}, "--file", testCatalog, "Morfología I")
	assert.Error(t, err)
}
