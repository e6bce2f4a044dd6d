package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFileNotFound is returned when the path does not exist at launch time.
	ErrFileNotFound = errors.New("game executable not found")
	// ErrLaunchFailed is the sentinel wrapped by LaunchError.
	ErrLaunchFailed = errors.New("launch failed")
)

// LaunchError carries the reason reported by the OS open mechanism.
type LaunchError struct {
	Path   string
	Reason string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch failed: %s", e.Reason)
}

func (e *LaunchError) Unwrap() error { return ErrLaunchFailed }

// Opener hands a file to the OS default handler.
type Opener interface {
	Open(path string) error
}

// SystemOpener uses xdg-open, open or rundll32 depending on the platform.
// The path is passed as a single argv element, never through a shell.
//
// On Linux xdg-open must be installed: the x-www-browser and www-browser
// fallbacks of pkg/browser are never reached, so an executable is not handed
// to a web browser. Output of the handler process is discarded.
func SystemOpener() Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return systemOpener{goos: runtime.GOOS, lookPath: exec.LookPath}
}

type systemOpener struct {
	goos     string
	lookPath func(string) (string, error)
}

func (o systemOpener) Open(path string) error {
	if o.goos == "linux" {
		if _, err := o.lookPath("xdg-open"); err != nil {
			return fmt.Errorf("xdg-open unavailable: %w", err)
		}
	}
	return browser.OpenFile(path)
}

type Launcher struct {
	opener Opener
	stat   func(string) (os.FileInfo, error)
	log    logrus.FieldLogger
}

func New(opener Opener, log logrus.FieldLogger) *Launcher {
	if opener == nil {
		opener = SystemOpener()
	}
	return &Launcher{
		opener: opener,
		stat:   os.Stat,
		log:    log.WithField("component", "launch"),
	}
}

// Launch opens path with the OS default handler. It returns once the request
// has been handed off; the child process is not supervised.
func (l *Launcher) Launch(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return ErrFileNotFound
	}
	if _, err := l.stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrFileNotFound
		}
		return &LaunchError{Path: path, Reason: err.Error()}
	}

	if err := l.opener.Open(path); err != nil {
		l.log.WithError(err).WithField("path", path).Warn("launch failed")
		return &LaunchError{Path: path, Reason: err.Error()}
	}

	l.log.WithField("path", path).Info("game launched")
	return nil
}
