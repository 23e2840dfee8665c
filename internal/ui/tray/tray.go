package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow func()
	OnStart      func()
	OnPause      func()
	OnReset      func()
	OnQuit       func()
}

// Manager handles the system tray menu state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	showItem    *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Ready to start", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show Timer", func() {
		if manager.callbacks.OnShowWindow != nil {
			manager.callbacks.OnShowWindow()
		}
	})

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.resetItem.Disabled = true

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line shown at the top of the menu.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning adjusts the menu items to the timer state.
func (manager *Manager) SetRunning(running, paused bool) {
	switch {
	case running && !paused:
		manager.startItem.Disabled = true
		manager.pauseItem.Label = "Pause"
		manager.pauseItem.Disabled = false
		manager.resetItem.Disabled = false
	case running && paused:
		manager.startItem.Disabled = false
		manager.pauseItem.Label = "Resume"
		manager.pauseItem.Disabled = false
		manager.resetItem.Disabled = false
	default:
		manager.startItem.Disabled = false
		manager.pauseItem.Label = "Pause"
		manager.pauseItem.Disabled = true
		manager.resetItem.Disabled = true
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		manager.showItem,
		manager.startItem,
		manager.pauseItem,
		manager.resetItem,
		manager.quitItem,
	))
}
