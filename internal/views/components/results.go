package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tiptally/internal/i18n"
	"tiptally/internal/models"
)

// placeholderValue is shown before the first calculation.
const placeholderValue = "--"

// ResultPanel displays the computed tip, total, and per-person amounts as
// localized currency strings.
type ResultPanel struct {
	container      *fyne.Container
	tipValue       *widget.Label
	totalValue     *widget.Label
	perPersonValue *widget.Label
}

// NewResultPanel creates a new result panel.
func NewResultPanel(catalog *i18n.Catalog) *ResultPanel {
	panel := &ResultPanel{}
	panel.createComponents()
	panel.buildLayout(catalog)
	return panel
}

// createComponents initializes the value labels.
func (rp *ResultPanel) createComponents() {
	rp.tipValue = widget.NewLabelWithStyle(placeholderValue, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	rp.totalValue = widget.NewLabelWithStyle(placeholderValue, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	rp.perPersonValue = widget.NewLabelWithStyle(placeholderValue, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
}

// buildLayout constructs the panel layout.
func (rp *ResultPanel) buildLayout(catalog *i18n.Catalog) {
	rp.container = container.NewVBox(
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			widget.NewLabel(catalog.T(i18n.TipLabel)),
			rp.tipValue,
			widget.NewLabel(catalog.T(i18n.TotalLabel)),
			rp.totalValue,
			widget.NewLabel(catalog.T(i18n.PerPersonLabel)),
			rp.perPersonValue,
		),
	)
}

// SetBreakdown updates the displayed amounts.
func (rp *ResultPanel) SetBreakdown(breakdown models.TipBreakdown) {
	rp.tipValue.SetText(breakdown.FormattedTip)
	rp.totalValue.SetText(breakdown.FormattedTotal)
	rp.perPersonValue.SetText(breakdown.FormattedPerPerson)
}

// TipText returns the displayed tip amount.
func (rp *ResultPanel) TipText() string {
	return rp.tipValue.Text
}

// TotalText returns the displayed total amount.
func (rp *ResultPanel) TotalText() string {
	return rp.totalValue.Text
}

// PerPersonText returns the displayed per-person amount.
func (rp *ResultPanel) PerPersonText() string {
	return rp.perPersonValue.Text
}

// Reset restores the placeholder values.
func (rp *ResultPanel) Reset() {
	rp.tipValue.SetText(placeholderValue)
	rp.totalValue.SetText(placeholderValue)
	rp.perPersonValue.SetText(placeholderValue)
}

// GetContainer returns the panel container.
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}
