//go:build darwin

package notify

import (
	"fmt"
	"log"
	"os/exec"

	"fyne.io/fyne/v2"
)

// osascriptNotifier posts a macOS notification via the AppleScript bridge,
// falling back to the Fyne notification service if osascript misbehaves.
type osascriptNotifier struct {
	fallback fyneNotifier
}

func newNotifier(app fyne.App) Notifier {
	if _, err := exec.LookPath("osascript"); err != nil {
		return &fyneNotifier{app: app}
	}
	return &osascriptNotifier{fallback: fyneNotifier{app: app}}
}

func (notifier *osascriptNotifier) Notify(title, message string) {
	script := fmt.Sprintf("display notification %q with title %q", message, title)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		log.Printf("osascript notification: %v", err)
		notifier.fallback.Notify(title, message)
	}
}
