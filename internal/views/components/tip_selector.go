package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tiptally/internal/i18n"
)

// DefaultTipOption is the preset selected when the app starts.
const DefaultTipOption = "15%"

// presetTipOptions are the quick-pick percentages offered alongside the
// custom entry.
var presetTipOptions = []string{"10%", DefaultTipOption, "18%", "20%"}

// TipSelector lets the user pick a preset tip percentage or type a custom
// one. The selector reports the chosen percentage as text; parsing happens
// upstream.
type TipSelector struct {
	container   *fyne.Container
	presets     *widget.RadioGroup
	customEntry *widget.Entry
	customLabel string

	// Event handlers
	changeHandler func(string)
}

// NewTipSelector creates a new tip percentage selector.
func NewTipSelector(catalog *i18n.Catalog) *TipSelector {
	selector := &TipSelector{
		customLabel: catalog.T(i18n.CustomTip),
	}
	selector.createComponents()
	selector.buildLayout(catalog)
	selector.setupEventHandlers()
	return selector
}

// createComponents initializes the selector widgets.
func (ts *TipSelector) createComponents() {
	options := append(append([]string{}, presetTipOptions...), ts.customLabel)

	ts.presets = widget.NewRadioGroup(options, nil)
	ts.presets.Horizontal = true
	ts.presets.Selected = DefaultTipOption

	ts.customEntry = widget.NewEntry()
	ts.customEntry.SetPlaceHolder("25")
	ts.customEntry.Hide()
}

// buildLayout constructs the selector layout.
func (ts *TipSelector) buildLayout(catalog *i18n.Catalog) {
	label := widget.NewLabelWithStyle(
		catalog.T(i18n.TipPercent),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	ts.container = container.NewVBox(label, ts.presets, ts.customEntry)
}

// setupEventHandlers connects selection and entry events.
func (ts *TipSelector) setupEventHandlers() {
	ts.presets.OnChanged = func(selected string) {
		if selected == ts.customLabel {
			ts.customEntry.Show()
			ts.emitChange(ts.customEntry.Text)
			return
		}

		ts.customEntry.Hide()
		ts.emitChange(selected)
	}

	ts.customEntry.OnChanged = func(text string) {
		if ts.presets.Selected == ts.customLabel {
			ts.emitChange(text)
		}
	}
}

// emitChange forwards the chosen percentage text to the handler.
func (ts *TipSelector) emitChange(text string) {
	if ts.changeHandler != nil {
		ts.changeHandler(text)
	}
}

// SetChangeHandler sets the handler invoked with the selected percent text.
func (ts *TipSelector) SetChangeHandler(handler func(string)) {
	ts.changeHandler = handler
}

// Select picks one of the preset options, or the custom entry when the
// option matches the custom label.
func (ts *TipSelector) Select(option string) {
	ts.presets.SetSelected(option)
}

// SetCustomPercent switches to the custom option with the given text.
func (ts *TipSelector) SetCustomPercent(text string) {
	ts.presets.SetSelected(ts.customLabel)
	ts.customEntry.SetText(text)
}

// SelectDefault restores the default preset.
func (ts *TipSelector) SelectDefault() {
	ts.customEntry.SetText("")
	ts.presets.SetSelected(DefaultTipOption)
}

// CurrentPercentText returns the selected percentage as entered, e.g. "15%"
// for a preset or the raw custom text.
func (ts *TipSelector) CurrentPercentText() string {
	if ts.presets.Selected == ts.customLabel {
		return ts.customEntry.Text
	}
	return ts.presets.Selected
}

// IsCustomSelected reports whether the custom entry is active.
func (ts *TipSelector) IsCustomSelected() bool {
	return ts.presets.Selected == ts.customLabel
}

// GetContainer returns the selector container.
func (ts *TipSelector) GetContainer() *fyne.Container {
	return ts.container
}
