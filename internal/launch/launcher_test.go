package launch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"gamevault/internal/platform/logging"

	"github.com/pkg/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

func TestLauncher_MissingFile(t *testing.T) {
	opener := &recordingOpener{}
	l := New(opener, logging.Discard())

	err := l.Launch(context.Background(), "/path/that/does/not/exist")

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Empty(t, opener.opened)
}

func TestLauncher_Success(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "game.sh")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	opener := &recordingOpener{}
	l := New(opener, logging.Discard())

	require.NoError(t, l.Launch(context.Background(), exe))
	assert.Equal(t, []string{exe}, opener.opened)
}

func TestLauncher_OpenerFailure(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "game; rm -rf ~.exe")
	require.NoError(t, os.WriteFile(exe, []byte("x"), 0o755))
	opener := &recordingOpener{err: errors.New("no application registered")}
	l := New(opener, logging.Discard())

	err := l.Launch(context.Background(), exe)

	assert.ErrorIs(t, err, ErrLaunchFailed)
	var le *LaunchError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "no application registered", le.Reason)
	assert.Equal(t, []string{exe}, opener.opened, "path is handed over verbatim")
}

func TestLauncher_RechecksAtLaunchTime(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "game.exe")
	require.NoError(t, os.WriteFile(exe, []byte("x"), 0o755))
	opener := &recordingOpener{}
	l := New(opener, logging.Discard())

	require.NoError(t, l.Launch(context.Background(), exe))
	require.NoError(t, os.Remove(exe))

	assert.ErrorIs(t, l.Launch(context.Background(), exe), ErrFileNotFound)
	assert.Len(t, opener.opened, 1)
}

func TestSystemOpener_RequiresXDGOpenOnLinux(t *testing.T) {
	var looked []string
	o := systemOpener{goos: "linux", lookPath: func(name string) (string, error) {
		looked = append(looked, name)
		return "", exec.ErrNotFound
	}}

	err := o.Open("/games/Foo.sh")

	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Equal(t, []string{"xdg-open"}, looked)
}

func TestSystemOpener_MissingHandlerIsLaunchFailure(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "game.sh")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	o := systemOpener{goos: "linux", lookPath: func(string) (string, error) { return "", exec.ErrNotFound }}

	err := New(o, logging.Discard()).Launch(context.Background(), exe)

	assert.ErrorIs(t, err, ErrLaunchFailed)
}

func TestSystemOpener_DiscardsHandlerOutput(t *testing.T) {
	stdout, stderr := browser.Stdout, browser.Stderr
	t.Cleanup(func() { browser.Stdout, browser.Stderr = stdout, stderr })

	SystemOpener()

	assert.Equal(t, io.Discard, browser.Stdout)
	assert.Equal(t, io.Discard, browser.Stderr)
}
