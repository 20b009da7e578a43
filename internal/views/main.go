package views

import (
	"tiptally/internal/i18n"
	"tiptally/internal/models"
	"tiptally/internal/money"
	"tiptally/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView represents the single calculator screen. It owns the widgets and
// forwards user input to the controller through the registered handlers;
// all updates arrive on the Fyne event thread.
type MainView struct {
	// UI Components
	window        fyne.Window
	catalog       *i18n.Catalog
	mainContainer *fyne.Container
	billPanel     *components.BillPanel
	tipSelector   *components.TipSelector
	optionsPanel  *components.OptionsPanel
	resultPanel   *components.ResultPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	billAmountHandler func(string)
	tipPercentHandler func(string)
	roundUpHandler    func(bool)
	partySizeHandler  func(int)
	currencyHandler   func(string)
	resetHandler      func()
}

// NewMainView creates the main view and installs it as the window content.
func NewMainView(window fyne.Window, catalog *i18n.Catalog) *MainView {
	view := &MainView{
		window:  window,
		catalog: catalog,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components.
func (mv *MainView) initializeComponents() {
	mv.billPanel = components.NewBillPanel(mv.catalog)
	mv.tipSelector = components.NewTipSelector(mv.catalog)
	mv.optionsPanel = components.NewOptionsPanel(mv.catalog)
	mv.resultPanel = components.NewResultPanel(mv.catalog)
	mv.statusBar = components.NewStatusBar(mv.catalog)
}

// buildLayout constructs the main layout.
func (mv *MainView) buildLayout() {
	contentArea := container.NewVBox(
		mv.billPanel.GetContainer(),
		mv.tipSelector.GetContainer(),
		mv.optionsPanel.GetContainer(),
		mv.resultPanel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,                          // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		contentArea,                 // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events.
func (mv *MainView) setupEventHandlers() {
	mv.billPanel.SetChangeHandler(func(text string) {
		if mv.billAmountHandler != nil {
			mv.billAmountHandler(text)
		}
	})

	mv.tipSelector.SetChangeHandler(func(text string) {
		if mv.tipPercentHandler != nil {
			mv.tipPercentHandler(text)
		}
	})

	mv.optionsPanel.SetRoundUpHandler(func(roundUp bool) {
		if mv.roundUpHandler != nil {
			mv.roundUpHandler(roundUp)
		}
	})

	mv.optionsPanel.SetPartySizeHandler(func(size int) {
		if mv.partySizeHandler != nil {
			mv.partySizeHandler(size)
		}
	})

	mv.optionsPanel.SetCurrencyHandler(func(code string) {
		if mv.currencyHandler != nil {
			mv.currencyHandler(code)
		}
	})

	mv.optionsPanel.SetResetHandler(func() {
		if mv.resetHandler != nil {
			mv.resetHandler()
		}
	})
}

// Event handler setters - called by controller

// SetBillAmountHandler sets the handler for bill text changes.
func (mv *MainView) SetBillAmountHandler(handler func(string)) {
	mv.billAmountHandler = handler
}

// SetTipPercentHandler sets the handler for tip percent changes.
func (mv *MainView) SetTipPercentHandler(handler func(string)) {
	mv.tipPercentHandler = handler
}

// SetRoundUpHandler sets the handler for round-up toggles.
func (mv *MainView) SetRoundUpHandler(handler func(bool)) {
	mv.roundUpHandler = handler
}

// SetPartySizeHandler sets the handler for party size changes.
func (mv *MainView) SetPartySizeHandler(handler func(int)) {
	mv.partySizeHandler = handler
}

// SetCurrencyHandler sets the handler for currency changes.
func (mv *MainView) SetCurrencyHandler(handler func(string)) {
	mv.currencyHandler = handler
}

// SetResetHandler sets the handler for the reset action.
func (mv *MainView) SetResetHandler(handler func()) {
	mv.resetHandler = handler
}

// UI update methods - called by controller

// UpdateBreakdown refreshes the displayed amounts.
func (mv *MainView) UpdateBreakdown(breakdown models.TipBreakdown) {
	mv.resultPanel.SetBreakdown(breakdown)
}

// UpdateCalculationCount refreshes the status bar counter.
func (mv *MainView) UpdateCalculationCount(count int) {
	mv.statusBar.SetCalculationCount(count)
}

// UpdateLocaleInfo refreshes the locale and currency display.
func (mv *MainView) UpdateLocaleInfo(loc money.Locale) {
	mv.statusBar.SetLocaleInfo(loc.String())
	mv.optionsPanel.SetCurrency(loc.Unit.String())
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ApplyDefaults restores every input widget to its default value.
func (mv *MainView) ApplyDefaults() {
	mv.billPanel.Clear()
	mv.tipSelector.SelectDefault()
	mv.optionsPanel.ApplyDefaults()
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(err, mv.window)
}

// ShowInfo displays an information dialog.
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowConfirm displays a confirmation dialog.
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container.
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Show displays the view.
func (mv *MainView) Show() {
	mv.window.Show()
}

// ViewState represents the current state of the input widgets.
type ViewState struct {
	BillText       string
	TipPercentText string
	CustomTip      bool
	RoundUp        bool
	PartySize      int
	Currency       string
	StatusMessage  string
}

// GetViewState returns the current view state.
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		BillText:       mv.billPanel.Text(),
		TipPercentText: mv.tipSelector.CurrentPercentText(),
		CustomTip:      mv.tipSelector.IsCustomSelected(),
		RoundUp:        mv.optionsPanel.RoundUp(),
		PartySize:      mv.optionsPanel.PartySize(),
		Currency:       mv.optionsPanel.Currency(),
		StatusMessage:  mv.statusBar.GetStatus(),
	}
}

// ApplyViewState applies a view state to the input widgets.
func (mv *MainView) ApplyViewState(state ViewState) {
	mv.billPanel.SetText(state.BillText)

	if state.CustomTip {
		mv.tipSelector.SetCustomPercent(state.TipPercentText)
	} else {
		mv.tipSelector.Select(state.TipPercentText)
	}

	mv.optionsPanel.SetRoundUp(state.RoundUp)
	mv.optionsPanel.SetPartySize(state.PartySize)
	if state.Currency != "" {
		mv.optionsPanel.SetCurrency(state.Currency)
	}
	mv.statusBar.SetStatus(state.StatusMessage)
}
