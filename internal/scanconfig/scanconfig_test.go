package scanconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops an HCL scan config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "refgraph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_ReferenceMacros(t *testing.T) {
	t.Parallel()

	cfg := Default()
	for _, name := range []string{"ref", "cref", "eqref", "vref"} {
		assert.True(t, cfg.IsReferenceMacro(name), name)
	}
	assert.False(t, cfg.IsReferenceMacro("label"))
	assert.False(t, cfg.IsReferenceMacro("cite"))
}

func TestDefault_ReferenceMacrosIgnoreCase(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.True(t, cfg.IsReferenceMacro("Cref"))
	assert.True(t, cfg.IsReferenceMacro("REF"))
}

func TestDefault_MainEnvironments(t *testing.T) {
	t.Parallel()

	cfg := Default()
	for _, name := range []string{"theorem", "theorem*", "lemmas", "definition", "scholia*"} {
		assert.True(t, cfg.IsMainEnvironment(name), name)
	}
	// Environment names are matched exactly.
	assert.False(t, cfg.IsMainEnvironment("Theorem"))
	assert.False(t, cfg.IsMainEnvironment("proof"))
	assert.False(t, cfg.IsMainEnvironment("center"))
}

func TestDefault_LabelMacro(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "label", Default().LabelMacro)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "")
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.LabelMacro, cfg.LabelMacro)
	assert.Equal(t, def.ReferenceMacros, cfg.ReferenceMacros)
	assert.Equal(t, def.MainEnvironments, cfg.MainEnvironments)
}

func TestLoad_OverridesSets(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
reference_macros  = ["myref"]
main_environments = ["theorem"]
label_macro       = "mylabel"
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, cfg.IsReferenceMacro("MyRef"))
	assert.False(t, cfg.IsReferenceMacro("ref"))
	assert.True(t, cfg.IsMainEnvironment("theorem"))
	assert.False(t, cfg.IsMainEnvironment("lemma"))
	assert.Equal(t, "mylabel", cfg.LabelMacro)
}

func TestLoad_DefaultsAreExposedToTheFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
reference_macros  = default_reference_macros
main_environments = default_main_environments
label_macro       = default_label_macro
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.ReferenceMacros, cfg.ReferenceMacros)
	assert.Equal(t, def.MainEnvironments, cfg.MainEnvironments)
	assert.Equal(t, def.LabelMacro, cfg.LabelMacro)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse scan config")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `reference_macros = [`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_UnknownAttribute(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `unknown_setting = true`)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to decode scan config")
}
