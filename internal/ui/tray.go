package ui

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/getlantern/systray"

	"github.com/clipforge/clipforge-agent/internal/host"
)

type Tray struct {
	opener      host.Opener
	frontendURL string
	logger      *slog.Logger

	statusItem  *systray.MenuItem
	exportsItem *systray.MenuItem

	mu sync.Mutex

	onQuit func()
}

type TrayConfig struct {
	Opener      host.Opener
	FrontendURL string
	Logger      *slog.Logger
	OnQuit      func()
}

func NewTray(cfg TrayConfig) *Tray {
	return &Tray{
		opener:      cfg.Opener,
		frontendURL: cfg.FrontendURL,
		logger:      cfg.Logger,
		onQuit:      cfg.OnQuit,
	}
}

func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(iconBytes)
	systray.SetTitle("ClipForge")
	systray.SetTooltip("ClipForge Agent")

	t.statusItem = systray.AddMenuItem("Status: Running", "Current agent status")
	t.statusItem.Disable()

	t.exportsItem = systray.AddMenuItem("Exports: 0", "Exports this session")
	t.exportsItem.Disable()

	systray.AddSeparator()

	openItem := systray.AddMenuItem("Open ClipForge...", "Open the ClipForge app")

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Quit ClipForge Agent")

	go func() {
		for {
			select {
			case <-openItem.ClickedCh:
				t.handleOpen()
			case <-quitItem.ClickedCh:
				t.logger.Info("quit requested from tray")
				if t.onQuit != nil {
					t.onQuit()
				}
				systray.Quit()
				return
			}
		}
	}()

	t.logger.Info("system tray ready")
}

func (t *Tray) onExit() {
	t.logger.Info("system tray exiting")
}

func (t *Tray) handleOpen() {
	if err := t.opener.OpenURL(t.frontendURL); err != nil {
		t.logger.Error("failed to open front end", "error", err, "url", t.frontendURL)
	}
}

func (t *Tray) UpdateStatus(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusItem.SetTitle("Status: " + status)
}

func (t *Tray) UpdateExportsCount(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exportsItem.SetTitle(fmt.Sprintf("Exports: %d", count))
}

func (t *Tray) Quit() {
	systray.Quit()
}
