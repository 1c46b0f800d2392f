package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRun_TagsJob(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us,de-de\nui_quit,menu,Quit,Beenden\n",
		"locale.hcl": `
table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "tags" "languages" {
  table  = "strings"
  output = "${workspace.dir}/languages.txt"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "languages.txt"))
	require.NoError(t, err)
	require.Equal(t, "en-us\nde-de", string(data))
}

func TestRun_TagsJobCustomReserved(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "id,note,en-us,key\nx,y,z,w\n",
		"locale.hcl": `
table "strings" {
  path     = "${workspace.dir}/strings.csv"
  reserved = ["id", "note"]
}

job "tags" "languages" {
  table  = "strings"
  output = "${workspace.dir}/languages.txt"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "languages.txt"))
	require.NoError(t, err)
	require.Equal(t, "en-us\nkey", string(data), "the overridden reserved set must replace the default")
}

func TestRun_ExportJobJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us,de-de\nui_quit,menu,Quit,Beenden\nui_play,menu,Play,Spielen\n",
		"locale.hcl": `
table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "export" "maps" {
  table  = "strings"
  output = "${workspace.dir}/build"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "build", "en-us.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"ui_quit": "Quit", "ui_play": "Play"}`, string(data))

	data, err = os.ReadFile(filepath.Join(dir, "build", "de-de.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"ui_quit": "Beenden", "ui_play": "Spielen"}`, string(data))
}

func TestRun_ExportJobYAMLSingleLanguage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us,de-de\nui_quit,menu,Quit,Beenden\n",
		"locale.hcl": `
table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "export" "maps" {
  table    = "strings"
  output   = "${workspace.dir}/build"
  format   = "yaml"
  language = "de-de"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "build", "de-de.yaml"))
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, map[string]string{"ui_quit": "Beenden"}, decoded)

	// The unselected language must not be written.
	_, statErr := os.Stat(filepath.Join(dir, "build", "en-us.yaml"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_ExportJobUnknownLanguageFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us\nui_quit,menu,Quit\n",
		"locale.hcl": `
table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "export" "maps" {
  table    = "strings"
  output   = "${workspace.dir}/build"
  language = "fr-fr"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `no language column "fr-fr"`)
}

func TestRun_FailingJobStopsPipeline(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The first job reads a missing table; the second would succeed.
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us\n",
		"locale.hcl": `
table "missing" {
  path = "${workspace.dir}/missing.csv"
}

table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "tags" "broken" {
  table  = "missing"
  output = "${workspace.dir}/broken.txt"
}

job "tags" "fine" {
  table  = "strings"
  output = "${workspace.dir}/fine.txt"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	err = manifest.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `job tags "broken" failed`)
	_, statErr := os.Stat(filepath.Join(dir, "fine.txt"))
	require.True(t, os.IsNotExist(statErr), "jobs after the failure must not run")
}

func TestRun_ExportIdempotent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"strings.csv": "key,context,en-us\nb_key,menu,B\na_key,menu,A\n",
		"locale.hcl": `
table "strings" {
  path = "${workspace.dir}/strings.csv"
}

job "export" "maps" {
  table  = "strings"
  output = "${workspace.dir}/build"
}
`,
	})
	manifest, err := Load(context.Background(), filepath.Join(dir, "locale.hcl"))
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, manifest.Run(context.Background()))
	first, err := os.ReadFile(filepath.Join(dir, "build", "en-us.json"))
	require.NoError(t, err)

	require.NoError(t, manifest.Run(context.Background()))
	second, err := os.ReadFile(filepath.Join(dir, "build", "en-us.json"))
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, first, second, "export output must be byte-identical across runs")
}
