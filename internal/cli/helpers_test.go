package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const panelWorld = `entities:
  - name: Panel
    custom_data: |-
      display -id 0
      label -name Hi
    surfaces:
      - texture: [512, 512]
        font_size: 2.5
inventories:
  - name: Cargo 1
    max_volume: 100
    current_volume: 25
`

const brokenWorld = `entities:
  - name: Panel
    custom_data: |-
      display -id 0
      label -name Hi
    surfaces:
      - texture: [512, 512]
        font_size: 2.5
  - name: Broken
    custom_data: |-
      display -id 0
      label -name a -name b
    surfaces:
      - texture: [512, 512]
        font_size: 2.5
`

// setupProject makes an isolated working directory (also HOME) and writes
// the given files into it.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CI", "")
	t.Setenv("PANELS_WORLD", "")
	t.Setenv("PANELS_NON_INTERACTIVE", "")
	chdir(t, dir)

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("restoring working directory: " + err.Error())
		}
	})
}
