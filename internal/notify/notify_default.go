//go:build !darwin

package notify

import (
	"fyne.io/fyne/v2"
)

func newNotifier(app fyne.App) Notifier {
	return &fyneNotifier{app: app}
}
