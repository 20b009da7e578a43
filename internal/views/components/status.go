package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tiptally/internal/i18n"
)

// StatusBar displays application status and information.
type StatusBar struct {
	catalog     *i18n.Catalog
	container   *fyne.Container
	statusLabel *widget.Label
	localeInfo  *widget.Label
	calcInfo    *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar(catalog *i18n.Catalog) *StatusBar {
	sb := &StatusBar{catalog: catalog}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components.
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(sb.catalog.T(i18n.Ready))
	sb.localeInfo = widget.NewLabel(placeholderValue)
	sb.calcInfo = widget.NewLabel(placeholderValue)
}

// buildLayout constructs the status bar layout.
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.localeInfo,
		widget.NewSeparator(),
		sb.calcInfo,
	)
}

// SetStatus updates the main status message.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetLocaleInfo updates the locale and currency display.
func (sb *StatusBar) SetLocaleInfo(info string) {
	sb.localeInfo.SetText(info)
}

// SetCalculationCount updates the calculation counter.
func (sb *StatusBar) SetCalculationCount(count int) {
	if count <= 0 {
		sb.calcInfo.SetText(placeholderValue)
		return
	}
	sb.calcInfo.SetText(sb.catalog.Count(i18n.CalculationCount, count))
}

// Reset restores the status bar to its initial state.
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(sb.catalog.T(i18n.Ready))
	sb.localeInfo.SetText(placeholderValue)
	sb.calcInfo.SetText(placeholderValue)
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
