package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), dir)
}

func TestInstallDir(t *testing.T) {
	t.Setenv("ProgramFiles", `D:\Programs`)
	assert.Equal(t, filepath.Join(`D:\Programs`, "PhotoResize"), InstallDir("PhotoResize"))
}

func TestInstallDirFallback(t *testing.T) {
	t.Setenv("ProgramFiles", "")
	assert.Equal(t, filepath.Join(`C:\Program Files`, "PhotoResize"), InstallDir("PhotoResize"))
}

func TestStartMenuPrograms(t *testing.T) {
	t.Setenv("ProgramData", `D:\ProgramData`)
	want := filepath.Join(`D:\ProgramData`, "Microsoft", "Windows", "Start Menu", "Programs")
	assert.Equal(t, want, StartMenuPrograms())
}

func TestStartMenuProgramsFallback(t *testing.T) {
	t.Setenv("ProgramData", "")
	want := filepath.Join(`C:\ProgramData`, "Microsoft", "Windows", "Start Menu", "Programs")
	assert.Equal(t, want, StartMenuPrograms())
}

func TestDataDirEndsWithApp(t *testing.T) {
	got := DataDir("PhotoResize")
	assert.Equal(t, "PhotoResize", filepath.Base(got))
}
