package main

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/editor"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/tray"
)

const (
	appName  = "PomodoroTimer"
	appTitle = "Pomodoro Timer"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	store, err := storage.NewStore(appName)
	if err != nil {
		log.Printf("config store: %v", err)
		return
	}

	fyneApp := app.NewWithID("com.pomodoro.timer")
	newApp(fyneApp, store).run()
}

// application ties the controller, store, notifier and windows together.
// All fields are touched from the Fyne event loop only; controller callbacks
// hop onto it with fyne.Do.
type application struct {
	fyneApp    fyne.App
	store      *storage.Store
	controller *timer.Controller
	notifier   notify.Notifier

	techniques []model.Technique
	settings   storage.Settings
	loadErr    error

	notificationsOn atomic.Bool

	mainWin     *mainwindow.Window
	trayManager *tray.Manager
}

func newApp(fyneApp fyne.App, store *storage.Store) *application {
	return &application{fyneApp: fyneApp, store: store}
}

func (a *application) run() {
	var err error
	a.settings, err = a.store.LoadSettings()
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	a.notificationsOn.Store(a.settings.NotificationsEnabled)

	a.techniques, a.loadErr = a.store.LoadTechniques()

	active := a.techniques[0]
	if technique, ok := model.FindTechnique(a.techniques, a.settings.LastTechnique); ok {
		active = technique
	}

	a.controller = timer.New(active, timer.Config{TickInterval: time.Second})
	a.notifier = notify.New(a.fyneApp)

	a.mainWin = mainwindow.New(a.fyneApp, mainwindow.Callbacks{
		OnStart:               a.controller.Start,
		OnPause:               a.togglePause,
		OnReset:               a.controller.Reset,
		OnSelectTechnique:     a.selectTechnique,
		OnAddTechnique:        a.showAddDialog,
		OnEditTechniques:      a.showEditDialog,
		OnApplySettings:       a.applyQuickSettings,
		OnToggleNotifications: a.toggleNotifications,
		OnToggleLaunchAtLogin: a.toggleLaunchAtLogin,
	})

	if desktopApp, ok := a.fyneApp.(desktop.App); ok {
		a.trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowWindow: a.mainWin.Show,
			OnStart:      a.controller.Start,
			OnPause:      a.togglePause,
			OnReset:      a.controller.Reset,
			OnQuit:       a.fyneApp.Quit,
		})
		a.mainWin.SetCloseIntercept(a.mainWin.Window().Hide)
	}

	a.controller.SetCallbacks(timer.Callbacks{
		OnTick:          a.handleTick,
		OnPhaseComplete: a.handlePhaseComplete,
		OnCycleUpdated:  a.handleCycleUpdated,
		OnStateChange:   a.handleStateChange,
	})

	a.refreshTechniqueWidgets(active.Name)
	a.mainWin.SetPreferences(a.settings.NotificationsEnabled, a.settings.LaunchAtLogin)
	a.applySnapshot(a.controller.Snapshot())
	a.mainWin.Show()

	if a.loadErr != nil {
		dialog.ShowError(fmt.Errorf("failed to load techniques, using defaults: %w", a.loadErr), a.mainWin.Window())
	}

	a.fyneApp.Run()
}

func (a *application) togglePause() {
	if a.controller.Snapshot().Paused {
		a.controller.Start()
	} else {
		a.controller.Pause()
	}
}

func (a *application) selectTechnique(name string) {
	technique, ok := model.FindTechnique(a.techniques, name)
	if !ok {
		return
	}
	a.controller.SelectTechnique(technique)
	a.refreshTechniqueWidgets(name)

	a.settings.LastTechnique = name
	a.saveSettings()
}

func (a *application) showAddDialog() {
	editor.ShowAdd(a.fyneApp, a.addTechnique)
}

func (a *application) showEditDialog() {
	editor.ShowEdit(a.fyneApp, a.techniques, a.editTechniques)
}

func (a *application) addTechnique(technique model.Technique) error {
	a.techniques = append(a.techniques, technique)
	a.refreshTechniqueWidgets(a.controller.ActiveTechnique().Name)
	a.persistTechniques()
	return nil
}

func (a *application) editTechniques(updated []model.Technique) error {
	if len(updated) == 0 {
		return &model.ValidationError{Field: "techniques", Reason: "at least one technique is required"}
	}
	a.techniques = updated
	a.selectTechnique(updated[0].Name)
	a.persistTechniques()
	return nil
}

func (a *application) applyQuickSettings(workMinutes, breakMinutes int) {
	active := a.controller.ActiveTechnique()
	for i := range a.techniques {
		if a.techniques[i].Name != active.Name {
			continue
		}
		a.techniques[i].WorkMinutes = workMinutes
		a.techniques[i].BreakMinutes = breakMinutes
		a.controller.SelectTechnique(a.techniques[i])
		a.persistTechniques()
		dialog.ShowInformation("Settings Applied", "Your settings have been applied and saved.", a.mainWin.Window())
		return
	}
}

func (a *application) toggleNotifications(enabled bool) {
	a.settings.NotificationsEnabled = enabled
	a.notificationsOn.Store(enabled)
	a.saveSettings()
}

func (a *application) toggleLaunchAtLogin(enabled bool) {
	execPath, err := os.Executable()
	if err == nil {
		if enabled {
			err = platform.EnableAutostart(appTitle, execPath)
		} else {
			err = platform.DisableAutostart(appTitle)
		}
	}
	if err != nil {
		log.Printf("autostart: %v", err)
		dialog.ShowError(err, a.mainWin.Window())
		return
	}
	a.settings.LaunchAtLogin = enabled
	a.saveSettings()
}

// persistTechniques saves the list; the in-memory list stays authoritative
// when the write fails, so the user can retry from an intact state.
func (a *application) persistTechniques() {
	if err := a.store.SaveTechniques(a.techniques); err != nil {
		log.Printf("save techniques: %v", err)
		dialog.ShowError(fmt.Errorf("failed to save techniques: %w", err), a.mainWin.Window())
	}
}

func (a *application) saveSettings() {
	if err := a.store.SaveSettings(a.settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func (a *application) refreshTechniqueWidgets(selected string) {
	names := make([]string, 0, len(a.techniques))
	for _, technique := range a.techniques {
		names = append(names, technique.Name)
	}
	a.mainWin.SetTechniques(names, selected)

	active := a.controller.ActiveTechnique()
	a.mainWin.SetDescription(active.Description)
	a.mainWin.SetQuickSettings(active.WorkMinutes, active.BreakMinutes)
}

func (a *application) handleTick(remainingSeconds int, phase timer.Phase) {
	total := a.controller.PhaseTotalSeconds()
	fyne.Do(func() {
		a.mainWin.SetRemaining(remainingSeconds)
		if total > 0 {
			a.mainWin.SetProgress(float64(total-remainingSeconds) / float64(total))
		}
		if a.trayManager != nil {
			a.trayManager.SetStatus(fmt.Sprintf("%s (%s)", mainwindow.FormatSeconds(remainingSeconds), phase.Label()))
		}
	})
}

func (a *application) handlePhaseComplete(finished timer.Phase) {
	if !a.notificationsOn.Load() {
		return
	}
	a.notifier.Notify(appTitle, phaseMessage(finished))
}

func (a *application) handleCycleUpdated(completedCycles int) {
	cycles := a.controller.ActiveTechnique().CyclesBeforeLongBreak
	fyne.Do(func() {
		a.mainWin.SetCycle(completedCycles, cycles)
	})
}

func (a *application) handleStateChange(snapshot timer.Snapshot) {
	fyne.Do(func() {
		a.applySnapshot(snapshot)
	})
}

func (a *application) applySnapshot(snapshot timer.Snapshot) {
	a.mainWin.SetRemaining(snapshot.RemainingSeconds)
	a.mainWin.SetPhase(snapshot.Phase.Label())
	a.mainWin.SetRunning(snapshot.Running, snapshot.Paused)
	a.mainWin.SetCycle(snapshot.CompletedCycles, a.controller.ActiveTechnique().CyclesBeforeLongBreak)
	if !snapshot.Running {
		a.mainWin.SetProgress(0)
	}
	if a.trayManager != nil {
		a.trayManager.SetRunning(snapshot.Running, snapshot.Paused)
		status := snapshot.Phase.Label()
		if snapshot.Running {
			status = fmt.Sprintf("%s (%s)", mainwindow.FormatSeconds(snapshot.RemainingSeconds), status)
		}
		a.trayManager.SetStatus(status)
	}
}

func phaseMessage(finished timer.Phase) string {
	switch finished {
	case timer.PhaseWork:
		return "Work period complete! Time for a break."
	case timer.PhaseBreak:
		return "Break time complete! Back to work."
	default:
		return "Long break complete! Time to get back to work."
	}
}
