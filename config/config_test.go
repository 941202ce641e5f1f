package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FlagRoot(t *testing.T) {
	root := t.TempDir()
	c, err := Load([]string{"-r", root, "-m", "/home/user", "xbps-install", "-Su"}, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, root, c.AltRoot)
	assert.Equal(t, []string{"/home/user"}, c.UserMounts)
	assert.Equal(t, []string{"xbps-install", "-Su"}, c.Args)
	assert.False(t, c.Debug)
}

func TestLoad_EnvRoot(t *testing.T) {
	root := t.TempDir()
	c, err := Load([]string{"vi"}, map[string]string{EnvDir: root})
	require.NoError(t, err)
	assert.Equal(t, root, c.AltRoot)
	assert.Empty(t, c.UserMounts)
}

func TestLoad_FlagWinsOverEnv(t *testing.T) {
	flagRoot := t.TempDir()
	envRoot := t.TempDir()
	c, err := Load([]string{"--root", flagRoot, "vi"}, map[string]string{EnvDir: envRoot})
	require.NoError(t, err)
	assert.Equal(t, flagRoot, c.AltRoot)
}

func TestLoad_NoRoot(t *testing.T) {
	_, err := Load([]string{"vi"}, map[string]string{})
	assert.ErrorIs(t, err, ErrNoAltRoot)
	assert.EqualError(t, err, "environment variable VOIDNSRUN_DIR not found")
}

func TestLoad_RootNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Load([]string{"-r", file, "vi"}, map[string]string{})
	assert.ErrorIs(t, err, ErrNotDirectory)
	assert.EqualError(t, err, file+" is not a directory")

	_, err = Load([]string{"vi"}, map[string]string{EnvDir: filepath.Join(file, "missing")})
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestLoad_UserMountLimit(t *testing.T) {
	root := t.TempDir()
	args := []string{"-r", root}
	for i := 0; i < MaxUserMounts; i++ {
		args = append(args, "-m", fmt.Sprintf("/mnt/%d", i))
	}

	c, err := Load(append(args, "vi"), map[string]string{})
	require.NoError(t, err)
	assert.Len(t, c.UserMounts, MaxUserMounts)
	assert.Equal(t, "/mnt/0", c.UserMounts[0])
	assert.Equal(t, "/mnt/7", c.UserMounts[7])

	_, err = Load(append(args, "-m", "/mnt/8", "vi"), map[string]string{})
	assert.ErrorIs(t, err, ErrTooManyMounts)
	assert.EqualError(t, err, "only up to 8 user mounts allowed")
}

func TestLoad_MountWithComma(t *testing.T) {
	c, err := Load([]string{"-r", t.TempDir(), "-m", "/a,b", "vi"}, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a,b"}, c.UserMounts)
}

func TestLoad_StopsAtProgram(t *testing.T) {
	root := t.TempDir()
	c, err := Load([]string{"-r", root, "vi", "-m", "/x", "-r", "/y"}, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, c.UserMounts)
	assert.Equal(t, root, c.AltRoot)
	assert.Equal(t, []string{"vi", "-m", "/x", "-r", "/y"}, c.Args)
}

func TestLoad_DoubleDash(t *testing.T) {
	c, err := Load([]string{"-r", t.TempDir(), "--", "-weird-name"}, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"-weird-name"}, c.Args)
}

func TestLoad_NoProgram(t *testing.T) {
	_, err := Load([]string{"-r", t.TempDir()}, map[string]string{})
	assert.ErrorIs(t, err, ErrNoProgram)
	assert.EqualError(t, err, "no program to execute")
}

func TestLoad_HelpAndVersion(t *testing.T) {
	c, err := Load([]string{"-h"}, map[string]string{})
	require.NoError(t, err)
	assert.True(t, c.Help)

	c, err = Load([]string{"-v", "vi"}, map[string]string{})
	require.NoError(t, err)
	assert.True(t, c.Version)
	assert.Empty(t, c.AltRoot)
}

func TestLoad_HelpIgnoresEnvironment(t *testing.T) {
	broken := map[string]string{"VOIDNSRUN_DEBUG": "yes please"}

	c, err := Load([]string{"-h"}, broken)
	require.NoError(t, err)
	assert.True(t, c.Help)

	c, err = Load([]string{"--version"}, broken)
	require.NoError(t, err)
	assert.True(t, c.Version)

	_, err = Load([]string{"-r", t.TempDir(), "vi"}, broken)
	assert.Error(t, err)
}

func TestLoad_Debug(t *testing.T) {
	root := t.TempDir()
	c, err := Load([]string{"-r", root, "vi"}, map[string]string{"VOIDNSRUN_DEBUG": "true"})
	require.NoError(t, err)
	assert.True(t, c.Debug)

	c, err = Load([]string{"-d", "-r", root, "vi"}, map[string]string{})
	require.NoError(t, err)
	assert.True(t, c.Debug)

	_, err = Load([]string{"-r", root, "vi"}, map[string]string{"VOIDNSRUN_DEBUG": "maybe"})
	assert.Error(t, err)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-x", "vi"}, map[string]string{})
	assert.Error(t, err)
}
