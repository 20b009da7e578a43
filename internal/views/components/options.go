package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tiptally/internal/i18n"
)

// MaxPartySize is the largest split offered by the selector.
const MaxPartySize = 8

// currencyOptions are the ISO 4217 codes offered in the currency selector.
// The detected host currency is added when it is not already listed.
var currencyOptions = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "MXN"}

// OptionsPanel groups the round-up toggle, the party size selector, the
// display currency selector, and the reset action.
type OptionsPanel struct {
	container      *fyne.Container
	roundUpCheck   *widget.Check
	partySelect    *widget.Select
	currencySelect *widget.Select
	resetButton    *widget.Button

	// Event handlers
	roundUpHandler   func(bool)
	partySizeHandler func(int)
	currencyHandler  func(string)
	resetHandler     func()
}

// NewOptionsPanel creates a new options panel.
func NewOptionsPanel(catalog *i18n.Catalog) *OptionsPanel {
	panel := &OptionsPanel{}
	panel.createComponents(catalog)
	panel.buildLayout(catalog)
	panel.setupEventHandlers()
	return panel
}

// createComponents initializes the panel widgets.
func (op *OptionsPanel) createComponents(catalog *i18n.Catalog) {
	op.roundUpCheck = widget.NewCheck(catalog.T(i18n.RoundUp), nil)

	sizes := make([]string, 0, MaxPartySize)
	for i := 1; i <= MaxPartySize; i++ {
		sizes = append(sizes, strconv.Itoa(i))
	}
	op.partySelect = widget.NewSelect(sizes, nil)
	op.partySelect.Selected = "1"

	op.currencySelect = widget.NewSelect(append([]string{}, currencyOptions...), nil)

	op.resetButton = widget.NewButton(catalog.T(i18n.Reset), nil)
	op.resetButton.Importance = widget.MediumImportance
}

// buildLayout constructs the panel layout.
func (op *OptionsPanel) buildLayout(catalog *i18n.Catalog) {
	splitSection := container.NewVBox(
		widget.NewLabel(catalog.T(i18n.PartySize)),
		op.partySelect,
	)

	currencySection := container.NewVBox(
		widget.NewLabel(catalog.T(i18n.Currency)),
		op.currencySelect,
	)

	op.container = container.NewHBox(
		op.roundUpCheck,
		widget.NewSeparator(),
		splitSection,
		widget.NewSeparator(),
		currencySection,
		widget.NewSeparator(),
		op.resetButton,
	)
}

// setupEventHandlers connects widget events.
func (op *OptionsPanel) setupEventHandlers() {
	op.roundUpCheck.OnChanged = func(checked bool) {
		if op.roundUpHandler != nil {
			op.roundUpHandler(checked)
		}
	}

	op.partySelect.OnChanged = func(value string) {
		size, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		if op.partySizeHandler != nil {
			op.partySizeHandler(size)
		}
	}

	op.currencySelect.OnChanged = func(code string) {
		if op.currencyHandler != nil {
			op.currencyHandler(code)
		}
	}

	op.resetButton.OnTapped = func() {
		if op.resetHandler != nil {
			op.resetHandler()
		}
	}
}

// Event handler setters

// SetRoundUpHandler sets the round-up toggle handler.
func (op *OptionsPanel) SetRoundUpHandler(handler func(bool)) {
	op.roundUpHandler = handler
}

// SetPartySizeHandler sets the party size change handler.
func (op *OptionsPanel) SetPartySizeHandler(handler func(int)) {
	op.partySizeHandler = handler
}

// SetCurrencyHandler sets the currency change handler.
func (op *OptionsPanel) SetCurrencyHandler(handler func(string)) {
	op.currencyHandler = handler
}

// SetResetHandler sets the reset action handler.
func (op *OptionsPanel) SetResetHandler(handler func()) {
	op.resetHandler = handler
}

// State management methods

// SetRoundUp updates the round-up toggle.
func (op *OptionsPanel) SetRoundUp(checked bool) {
	op.roundUpCheck.SetChecked(checked)
}

// RoundUp returns the round-up toggle state.
func (op *OptionsPanel) RoundUp() bool {
	return op.roundUpCheck.Checked
}

// SetPartySize updates the party size selection.
func (op *OptionsPanel) SetPartySize(size int) {
	if size < 1 || size > MaxPartySize {
		return
	}
	op.partySelect.SetSelected(strconv.Itoa(size))
}

// PartySize returns the selected party size.
func (op *OptionsPanel) PartySize() int {
	size, err := strconv.Atoi(op.partySelect.Selected)
	if err != nil {
		return 1
	}
	return size
}

// SetCurrency selects the given currency code, adding it to the options
// when the host locale uses a currency outside the built-in list. Setting
// the already-selected code is a no-op so refresh cycles terminate.
func (op *OptionsPanel) SetCurrency(code string) {
	if code == "" || code == op.currencySelect.Selected {
		return
	}

	found := false
	for _, option := range op.currencySelect.Options {
		if option == code {
			found = true
			break
		}
	}
	if !found {
		op.currencySelect.Options = append([]string{code}, op.currencySelect.Options...)
		op.currencySelect.Refresh()
	}

	op.currencySelect.SetSelected(code)
}

// Currency returns the selected currency code.
func (op *OptionsPanel) Currency() string {
	return op.currencySelect.Selected
}

// ApplyDefaults restores the toggle and party size defaults. The currency
// selection is left alone; resetting inputs does not change the locale.
func (op *OptionsPanel) ApplyDefaults() {
	op.roundUpCheck.SetChecked(false)
	op.partySelect.SetSelected("1")
}

// GetContainer returns the panel container.
func (op *OptionsPanel) GetContainer() *fyne.Container {
	return op.container
}
