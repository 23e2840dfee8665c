package notify

import (
	"fyne.io/fyne/v2"
)

// Notifier shows a transient message to the user. Delivery is best-effort:
// implementations log failures and never return them, so a broken
// notification path cannot stall a phase transition.
type Notifier interface {
	Notify(title, message string)
}

// New returns the platform-specific notifier.
func New(app fyne.App) Notifier {
	return newNotifier(app)
}

// fyneNotifier delivers through the Fyne notification service.
type fyneNotifier struct {
	app fyne.App
}

func (notifier *fyneNotifier) Notify(title, message string) {
	notifier.app.SendNotification(fyne.NewNotification(title, message))
}
