package editor

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// techniqueForm holds the entry widgets for one technique being edited.
type techniqueForm struct {
	name        *widget.Entry
	work        *widget.Entry
	shortBreak  *widget.Entry
	longBreak   *widget.Entry
	cycles      *widget.Entry
	description *widget.Entry
	deleted     bool
	card        *widget.Card
}

func newTechniqueForm(technique model.Technique) *techniqueForm {
	form := &techniqueForm{
		name:        widget.NewEntry(),
		work:        widget.NewEntry(),
		shortBreak:  widget.NewEntry(),
		longBreak:   widget.NewEntry(),
		cycles:      widget.NewEntry(),
		description: widget.NewEntry(),
	}
	form.name.SetText(technique.Name)
	form.work.SetText(strconv.Itoa(technique.WorkMinutes))
	form.shortBreak.SetText(strconv.Itoa(technique.BreakMinutes))
	form.longBreak.SetText(strconv.Itoa(technique.LongBreakMinutes))
	form.cycles.SetText(strconv.Itoa(technique.CyclesBeforeLongBreak))
	form.description.SetText(technique.Description)
	return form
}

func (form *techniqueForm) content() fyne.CanvasObject {
	return container.NewVBox(
		labeledRow("Name:", form.name),
		labeledRow("Work Time (min):", form.work),
		labeledRow("Break Time (min):", form.shortBreak),
		labeledRow("Long Break Time (min):", form.longBreak),
		labeledRow("Cycles Before Long Break:", form.cycles),
		labeledRow("Description:", form.description),
	)
}

// technique parses the form back into a validated Technique.
func (form *techniqueForm) technique() (model.Technique, error) {
	work, err := parseMinutes("work time", form.work.Text)
	if err != nil {
		return model.Technique{}, err
	}
	shortBreak, err := parseMinutes("break time", form.shortBreak.Text)
	if err != nil {
		return model.Technique{}, err
	}
	longBreak, err := parseMinutes("long break time", form.longBreak.Text)
	if err != nil {
		return model.Technique{}, err
	}
	cycles, err := parseMinutes("cycles before long break", form.cycles.Text)
	if err != nil {
		return model.Technique{}, err
	}

	technique := model.Technique{
		Name:                  form.name.Text,
		WorkMinutes:           work,
		BreakMinutes:          shortBreak,
		LongBreakMinutes:      longBreak,
		CyclesBeforeLongBreak: cycles,
		Description:           form.description.Text,
	}
	if err := technique.Validate(); err != nil {
		return model.Technique{}, err
	}
	return technique, nil
}

// ShowAdd opens a window for creating a single new technique. onAdd receives
// the validated technique and returns an error when it could not be stored.
func ShowAdd(app fyne.App, onAdd func(model.Technique) error) {
	window := app.NewWindow("Add New Technique")

	form := newTechniqueForm(model.Technique{
		Name:                  "New Technique",
		WorkMinutes:           25,
		BreakMinutes:          5,
		LongBreakMinutes:      model.DefaultLongBreakMinutes,
		CyclesBeforeLongBreak: model.DefaultCyclesBeforeLongBreak,
	})

	addButton := widget.NewButton("Add Technique", func() {
		technique, err := form.technique()
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if err := onAdd(technique); err != nil {
			dialog.ShowError(err, window)
			return
		}
		window.Close()
	})
	cancelButton := widget.NewButton("Cancel", window.Close)

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, addButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form.content()))
	window.Resize(fyne.NewSize(400, 340))
	window.Show()
}

// ShowEdit opens a window holding every technique for editing and deletion.
// onSave receives the full updated list and returns an error when it could
// not be stored; deleting the last remaining technique is rejected.
func ShowEdit(app fyne.App, techniques []model.Technique, onSave func([]model.Technique) error) {
	window := app.NewWindow("Edit Techniques")

	forms := make([]*techniqueForm, 0, len(techniques))
	list := container.NewVBox()
	for i, technique := range techniques {
		form := newTechniqueForm(technique)
		index := i
		deleteButton := widget.NewButton("Delete", func() {
			if err := deleteForm(forms, index); err != nil {
				dialog.ShowError(err, window)
			}
		})
		form.card = widget.NewCard(fmt.Sprintf("Technique %d", i+1), "",
			container.NewVBox(form.content(), deleteButton))
		forms = append(forms, form)
		list.Add(form.card)
	}

	saveButton := widget.NewButton("Save Changes", func() {
		updated := make([]model.Technique, 0, len(forms))
		for _, form := range forms {
			if form.deleted {
				continue
			}
			technique, err := form.technique()
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			updated = append(updated, technique)
		}
		if err := onSave(updated); err != nil {
			dialog.ShowError(err, window)
			return
		}
		window.Close()
	})
	cancelButton := widget.NewButton("Cancel", window.Close)

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(list)))
	window.Resize(fyne.NewSize(500, 480))
	window.Show()
}

// deleteForm marks one form deleted, refusing to delete the last survivor.
func deleteForm(forms []*techniqueForm, index int) error {
	remaining := 0
	for _, form := range forms {
		if !form.deleted {
			remaining++
		}
	}
	if remaining <= 1 {
		return &model.ValidationError{Field: "techniques", Reason: "at least one technique is required"}
	}
	forms[index].deleted = true
	forms[index].card.Hide()
	return nil
}

func labeledRow(label string, entry *widget.Entry) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, entry)
}

func parseMinutes(field, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, &model.ValidationError{Field: field, Reason: "must be a positive whole number"}
	}
	return parsed, nil
}
