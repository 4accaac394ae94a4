package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

const chillerYAML = `
name: Chiller Rounds
description: Daily chiller inspection
kind: ppm
questions:
  - label: Oil level
    type: number
    group: "7"
    required: true
  - label: Unusual noise
    type: radio-group
    hint: Listen near the compressor
`

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadLocalTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "chiller.yaml", chillerYAML)
	writeTemplate(t, dir, "notes.txt", "not a template")

	templates, err := LoadLocalTemplates(dir)

	require.NoError(t, err)
	require.Len(t, templates, 1)
	tpl := templates[0]
	assert.Equal(t, "local:chiller", tpl.ID)
	assert.Equal(t, "Chiller Rounds", tpl.Name)
	assert.Equal(t, constants.KindPPM, tpl.Kind)
	require.Len(t, tpl.Content, 2)
	assert.Equal(t, "true", tpl.Content[0].Required)
	assert.Equal(t, "false", tpl.Content[1].Required)
	assert.Equal(t, "Listen near the compressor", tpl.Content[1].Hint)
}

func TestLoadLocalTemplates_MissingDir(t *testing.T) {
	templates, err := LoadLocalTemplates(filepath.Join(t.TempDir(), "absent"))

	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestLoadLocalTemplates_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "broken.yaml", "name: [unclosed")

	_, err := LoadLocalTemplates(dir)

	assert.ErrorIs(t, err, fmerrors.ErrTemplateParse)
}

func TestLoadLocalTemplates_NameDefaultsToStem(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "generator-check.yml", "questions:\n  - label: Fuel level\n    type: text\n")

	templates, err := LoadLocalTemplates(dir)

	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "generator-check", templates[0].Name)
	assert.Empty(t, templates[0].Kind)
}

func TestFindLocalTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "chiller.yaml", chillerYAML)

	byID, err := FindLocalTemplate(dir, "local:chiller")
	require.NoError(t, err)
	assert.Equal(t, "Chiller Rounds", byID.Name)

	byStem, err := FindLocalTemplate(dir, "chiller")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byStem.ID)

	_, err = FindLocalTemplate(dir, "boiler")
	assert.ErrorIs(t, err, fmerrors.ErrTemplateNotFound)
}
