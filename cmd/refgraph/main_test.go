package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag", "a.tex"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_NoSourceFiles(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one source file")
}

func TestRun_FullPipeline(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	source := `\begin{theorem}\label{thm:a}\ref{lem:b}\end{theorem}`
	filePath := filepath.Join(inputDir, "paper.tex")
	require.NoError(t, os.WriteFile(filePath, []byte(source), 0o600))

	args := []string{"-log-level", "error", "-output-dir", outputDir, filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(outputDir, "graph.gv"))
	require.NoError(t, err)
	require.Contains(t, string(content), "->")
}
