package mainwindow

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines the user actions forwarded from the main window.
type Callbacks struct {
	OnStart               func()
	OnPause               func()
	OnReset               func()
	OnSelectTechnique     func(name string)
	OnAddTechnique        func()
	OnEditTechniques      func()
	OnApplySettings       func(workMinutes, breakMinutes int)
	OnToggleNotifications func(enabled bool)
	OnToggleLaunchAtLogin func(enabled bool)
}

// Window is the main timer window: technique picker, countdown display,
// progress and controls. It holds no timer state of its own; every value on
// screen is pushed in through the Set methods.
type Window struct {
	window    fyne.Window
	callbacks Callbacks

	techniqueSelect *widget.Select
	description     *widget.Label
	timeText        *canvas.Text
	phaseLabel      *widget.Label
	cycleLabel      *widget.Label
	progress        *widget.ProgressBar

	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button

	workEntry      *widget.Entry
	breakEntry     *widget.Entry
	notifyCheck    *widget.Check
	autostartCheck *widget.Check

	muteSelect bool
}

// New creates the main window.
func New(app fyne.App, callbacks Callbacks) *Window {
	main := &Window{callbacks: callbacks}

	main.window = app.NewWindow("Pomodoro Timer")
	main.window.SetMaster()

	main.techniqueSelect = widget.NewSelect(nil, func(name string) {
		if main.muteSelect {
			return
		}
		if main.callbacks.OnSelectTechnique != nil {
			main.callbacks.OnSelectTechnique(name)
		}
	})

	addButton := widget.NewButton("Add", func() {
		if main.callbacks.OnAddTechnique != nil {
			main.callbacks.OnAddTechnique()
		}
	})
	editButton := widget.NewButton("Edit", func() {
		if main.callbacks.OnEditTechniques != nil {
			main.callbacks.OnEditTechniques()
		}
	})

	main.description = widget.NewLabel("")
	main.description.Wrapping = fyne.TextWrapWord

	main.timeText = canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	main.timeText.TextSize = 48
	main.timeText.Alignment = fyne.TextAlignCenter

	main.phaseLabel = widget.NewLabelWithStyle("Ready to start", fyne.TextAlignCenter, fyne.TextStyle{})
	main.cycleLabel = widget.NewLabel("Cycle: 0/4")
	main.progress = widget.NewProgressBar()

	main.startButton = widget.NewButton("Start", func() {
		if main.callbacks.OnStart != nil {
			main.callbacks.OnStart()
		}
	})
	main.pauseButton = widget.NewButton("Pause", func() {
		if main.callbacks.OnPause != nil {
			main.callbacks.OnPause()
		}
	})
	main.resetButton = widget.NewButton("Reset", func() {
		if main.callbacks.OnReset != nil {
			main.callbacks.OnReset()
		}
	})
	main.pauseButton.Disable()
	main.resetButton.Disable()

	main.workEntry = widget.NewEntry()
	main.breakEntry = widget.NewEntry()
	applyButton := widget.NewButton("Apply Settings", main.handleApplySettings)

	main.notifyCheck = widget.NewCheck("Show notifications", func(enabled bool) {
		if main.callbacks.OnToggleNotifications != nil {
			main.callbacks.OnToggleNotifications(enabled)
		}
	})
	main.autostartCheck = widget.NewCheck("Launch at login", func(enabled bool) {
		if main.callbacks.OnToggleLaunchAtLogin != nil {
			main.callbacks.OnToggleLaunchAtLogin(enabled)
		}
	})

	techniqueRow := container.NewBorder(nil, nil, widget.NewLabel("Technique:"),
		container.NewHBox(editButton, addButton), main.techniqueSelect)

	quickSettings := container.NewVBox(
		widget.NewLabelWithStyle("Quick Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work Time (min)"), layout.NewSpacer(), main.workEntry),
		container.NewHBox(widget.NewLabel("Break Time (min)"), layout.NewSpacer(), main.breakEntry),
		applyButton,
		main.notifyCheck,
		main.autostartCheck,
	)

	content := container.NewVBox(
		techniqueRow,
		main.description,
		container.NewPadded(main.timeText),
		main.phaseLabel,
		main.cycleLabel,
		main.progress,
		container.NewHBox(layout.NewSpacer(), main.startButton, main.pauseButton, main.resetButton, layout.NewSpacer()),
		quickSettings,
	)

	main.window.SetContent(content)
	main.window.Resize(fyne.NewSize(400, 520))
	main.window.SetFixedSize(true)
	main.window.CenterOnScreen()

	return main
}

// Show displays the main window.
func (main *Window) Show() {
	main.window.Show()
}

// Window exposes the underlying fyne window, used as the parent for dialogs.
func (main *Window) Window() fyne.Window {
	return main.window
}

// SetCloseIntercept installs a close handler (hide to tray).
func (main *Window) SetCloseIntercept(intercept func()) {
	main.window.SetCloseIntercept(intercept)
}

// SetTechniques replaces the selector options without firing the selection
// callback.
func (main *Window) SetTechniques(names []string, selected string) {
	main.muteSelect = true
	main.techniqueSelect.SetOptions(names)
	main.techniqueSelect.SetSelected(selected)
	main.muteSelect = false
}

// SetDescription updates the technique description text.
func (main *Window) SetDescription(text string) {
	main.description.SetText(text)
}

// SetRemaining updates the countdown display.
func (main *Window) SetRemaining(seconds int) {
	main.timeText.Text = FormatSeconds(seconds)
	main.timeText.Refresh()
}

// SetPhase updates the phase indicator.
func (main *Window) SetPhase(label string) {
	main.phaseLabel.SetText(label)
}

// SetCycle updates the completed-cycle indicator.
func (main *Window) SetCycle(completed, beforeLongBreak int) {
	main.cycleLabel.SetText(fmt.Sprintf("Cycle: %d/%d", completed, beforeLongBreak))
}

// SetProgress updates the phase progress bar with a 0..1 fraction.
func (main *Window) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	main.progress.SetValue(fraction)
}

// SetRunning adjusts the control buttons to the timer state.
func (main *Window) SetRunning(running, paused bool) {
	switch {
	case running && !paused:
		main.startButton.Disable()
		main.pauseButton.SetText("Pause")
		main.pauseButton.Enable()
		main.resetButton.Enable()
	case running && paused:
		main.startButton.Enable()
		main.pauseButton.SetText("Resume")
		main.pauseButton.Enable()
		main.resetButton.Enable()
	default:
		main.startButton.Enable()
		main.pauseButton.SetText("Pause")
		main.pauseButton.Disable()
		main.resetButton.Disable()
	}
}

// SetQuickSettings fills the quick-settings entries from the active
// technique.
func (main *Window) SetQuickSettings(workMinutes, breakMinutes int) {
	main.workEntry.SetText(strconv.Itoa(workMinutes))
	main.breakEntry.SetText(strconv.Itoa(breakMinutes))
}

// SetPreferences fills the preference checkboxes without firing callbacks.
func (main *Window) SetPreferences(notifications, launchAtLogin bool) {
	notifyHandler := main.notifyCheck.OnChanged
	autostartHandler := main.autostartCheck.OnChanged
	main.notifyCheck.OnChanged = nil
	main.autostartCheck.OnChanged = nil
	main.notifyCheck.SetChecked(notifications)
	main.autostartCheck.SetChecked(launchAtLogin)
	main.notifyCheck.OnChanged = notifyHandler
	main.autostartCheck.OnChanged = autostartHandler
}

func (main *Window) handleApplySettings() {
	workMinutes, workOK := parsePositiveInt(main.workEntry.Text)
	breakMinutes, breakOK := parsePositiveInt(main.breakEntry.Text)
	if !workOK || !breakOK {
		return
	}
	if main.callbacks.OnApplySettings != nil {
		main.callbacks.OnApplySettings(workMinutes, breakMinutes)
	}
}

// FormatSeconds renders a second count as MM:SS.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
