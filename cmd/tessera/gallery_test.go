package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/alexisbeaulieu97/tessera/pkg/errors"
)

func TestGalleryRendersStaticViewWhenNotATerminal(t *testing.T) {
	out, _, err := executeRoot(t, "gallery")
	require.NoError(t, err)

	assert.Contains(t, out, "Tessera gallery")
	assert.Contains(t, out, "Page 7 of 20")
	assert.Contains(t, out, "Autocomplete")
	assert.Contains(t, out, "Date picker")
}

func TestGalleryLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	doc := `version: "1"
title: Demo
pager:
  total: 12
  initial_page: 4
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := executeRoot(t, "gallery", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "Page 4 of 12")
}

func TestGalleryReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"2\"\n"), 0o600))

	out, logs, err := executeRoot(t, "gallery", "-c", path)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "failed to load gallery config")

	var verrs pkgerrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestGalleryMissingConfigFile(t *testing.T) {
	_, _, err := executeRoot(t, "gallery", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
