package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tiptally/internal/i18n"
)

// BillPanel holds the bill amount entry.
type BillPanel struct {
	container *fyne.Container
	entry     *widget.Entry

	// Event handlers
	changeHandler func(string)
}

// NewBillPanel creates a new bill entry panel.
func NewBillPanel(catalog *i18n.Catalog) *BillPanel {
	panel := &BillPanel{}
	panel.createComponents()
	panel.buildLayout(catalog)
	panel.setupEventHandlers()
	return panel
}

// createComponents initializes the panel widgets.
func (bp *BillPanel) createComponents() {
	bp.entry = widget.NewEntry()
	bp.entry.SetPlaceHolder("0.00")
}

// buildLayout constructs the panel layout.
func (bp *BillPanel) buildLayout(catalog *i18n.Catalog) {
	label := widget.NewLabelWithStyle(
		catalog.T(i18n.BillAmount),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	bp.container = container.NewVBox(label, bp.entry)
}

// setupEventHandlers connects entry events.
func (bp *BillPanel) setupEventHandlers() {
	bp.entry.OnChanged = func(text string) {
		if bp.changeHandler != nil {
			bp.changeHandler(text)
		}
	}
}

// SetChangeHandler sets the handler invoked as the bill text changes.
func (bp *BillPanel) SetChangeHandler(handler func(string)) {
	bp.changeHandler = handler
}

// SetText replaces the entry text.
func (bp *BillPanel) SetText(text string) {
	bp.entry.SetText(text)
}

// Text returns the current entry text.
func (bp *BillPanel) Text() string {
	return bp.entry.Text
}

// Clear empties the entry.
func (bp *BillPanel) Clear() {
	bp.entry.SetText("")
}

// GetContainer returns the panel container.
func (bp *BillPanel) GetContainer() *fyne.Container {
	return bp.container
}
