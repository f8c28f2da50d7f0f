// Package host provides the platform capability providers the command
// dispatcher depends on. Each capability is an explicit interface so
// handlers never reach for an ambient global.
package host

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/browser"
)

// Opener asks the operating system to open a URL with its default handler.
type Opener interface {
	OpenURL(url string) error
}

// AppDirs resolves platform-conventional application directories.
type AppDirs interface {
	AppDataDir() (string, error)
}

// Picker shows a native file selection dialog.
type Picker interface {
	// PickAudioFile returns the chosen path, or ok=false when nothing
	// was selected.
	PickAudioFile(ctx context.Context) (path string, ok bool, err error)
}

// BrowserOpener opens URLs via the default system browser.
type BrowserOpener struct {
	logger *slog.Logger
}

func NewBrowserOpener(logger *slog.Logger) *BrowserOpener {
	return &BrowserOpener{logger: logger}
}

func (o *BrowserOpener) OpenURL(url string) error {
	o.logger.Debug("opening url with system handler", "url", url)
	return browser.OpenURL(url)
}

// XDGAppDirs resolves directories per the XDG base directory spec (with
// the platform equivalents on macOS and Windows).
type XDGAppDirs struct {
	appName string
}

func NewXDGAppDirs(appName string) *XDGAppDirs {
	return &XDGAppDirs{appName: appName}
}

func (d *XDGAppDirs) AppDataDir() (string, error) {
	if xdg.DataHome == "" {
		return "", errors.New("cannot resolve user data directory on this platform")
	}
	return filepath.Join(xdg.DataHome, d.appName), nil
}

// StubPicker never selects anything; file choice is delegated to the
// front end's drag-and-drop.
type StubPicker struct {
	logger *slog.Logger
}

func NewStubPicker(logger *slog.Logger) *StubPicker {
	return &StubPicker{logger: logger}
}

func (p *StubPicker) PickAudioFile(ctx context.Context) (string, bool, error) {
	p.logger.Debug("picker stub: selection requested (native dialog not implemented)")
	return "", false, nil
}
