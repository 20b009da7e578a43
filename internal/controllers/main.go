package controllers

import (
	"fmt"
	"sync"

	"tiptally/internal/logger"
	"tiptally/internal/models"
	"tiptally/internal/money"
	"tiptally/internal/services"
	"tiptally/internal/views"

	"fyne.io/fyne/v2"
)

// Event types emitted by the controller.
const (
	EventTipCalculated = "tip_calculated"
	EventInputsReset   = "inputs_reset"
	EventLocaleChanged = "locale_changed"
)

// MainController orchestrates the application using the MVC pattern.
type MainController struct {
	// Services
	calcService *services.CalculationService

	// Models/Repositories
	stateRepo *models.CalculatorState

	// Views
	mainView *views.MainView

	// State management
	mu            sync.RWMutex
	currentWindow fyne.Window
	locale        money.Locale

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex

	log logger.Logger
}

// EventHandler represents a function that handles application events.
type EventHandler func(data interface{}) error

// NewMainController creates a new main controller.
func NewMainController(
	calcService *services.CalculationService,
	stateRepo *models.CalculatorState,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		calcService:   calcService,
		stateRepo:     stateRepo,
		eventHandlers: make(map[string][]EventHandler),
		log:           log,
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the main view with this controller.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// SetWindow sets the main application window.
func (mc *MainController) SetWindow(window fyne.Window) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.currentWindow = window
}

// SetLocale stores the active locale and swaps the display formatter.
func (mc *MainController) SetLocale(loc money.Locale) {
	mc.mu.Lock()
	mc.locale = loc
	mc.mu.Unlock()

	mc.calcService.SetFormatter(money.NewFormatterForLocale(loc))
}

// CurrentLocale returns the active locale.
func (mc *MainController) CurrentLocale() money.Locale {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.locale
}

// HandleBillAmountChanged coerces bill text and recomputes the breakdown.
// Unparsable or negative text behaves as an empty bill.
func (mc *MainController) HandleBillAmountChanged(text string) {
	amount := services.CoerceAmount(text)
	if err := mc.stateRepo.SetBillAmount(amount); err != nil {
		mc.handleError("Bill amount rejected", err)
		return
	}

	mc.Refresh()
}

// HandleTipPercentChanged coerces tip percent text and recomputes the
// breakdown. Unparsable text behaves as a zero percentage.
func (mc *MainController) HandleTipPercentChanged(text string) {
	mc.stateRepo.SetTipPercent(services.CoercePercent(text))
	mc.Refresh()
}

// HandleRoundUpChanged toggles round-up and recomputes the breakdown.
func (mc *MainController) HandleRoundUpChanged(roundUp bool) {
	mc.stateRepo.SetRoundUp(roundUp)
	mc.Refresh()
}

// HandlePartySizeChanged updates the party size and recomputes the breakdown.
func (mc *MainController) HandlePartySizeChanged(size int) {
	if err := mc.stateRepo.SetPartySize(size); err != nil {
		mc.handleError("Party size rejected", err)
		return
	}

	mc.Refresh()
}

// HandleCurrencyChanged switches the display currency, keeping the language
// unchanged, and recomputes the breakdown.
func (mc *MainController) HandleCurrencyChanged(code string) {
	mc.mu.RLock()
	tagName := mc.locale.Tag.String()
	mc.mu.RUnlock()

	loc, err := money.ParseLocale(tagName, code)
	if err != nil {
		mc.handleError("Currency change failed", err)
		return
	}

	mc.mu.Lock()
	mc.locale = loc
	mc.mu.Unlock()

	mc.calcService.SetFormatter(money.NewFormatterForLocale(loc))
	mc.emitEvent(EventLocaleChanged, loc)
	mc.Refresh()
}

// HandleReset restores all inputs to their defaults and refreshes the view.
func (mc *MainController) HandleReset() {
	mc.calcService.ResetInputs()

	if mc.mainView != nil {
		mc.mainView.ApplyDefaults()
	}

	mc.emitEvent(EventInputsReset, mc.stateRepo.Snapshot())
	mc.Refresh()
}

// Refresh recomputes the breakdown from the current state and pushes it to
// the view.
func (mc *MainController) Refresh() {
	breakdown := mc.calcService.Recalculate()

	if mc.mainView != nil {
		stats := mc.calcService.Stats()
		mc.mainView.UpdateBreakdown(breakdown)
		mc.mainView.UpdateCalculationCount(stats.TotalCalculations)
		mc.mainView.UpdateLocaleInfo(mc.CurrentLocale())
	}

	mc.emitEvent(EventTipCalculated, breakdown)
}

// GetApplicationState returns the current application state.
func (mc *MainController) GetApplicationState() ApplicationState {
	stats := mc.calcService.Stats()
	loc := mc.CurrentLocale()

	return ApplicationState{
		Inputs:           mc.stateRepo.Snapshot(),
		HasResult:        mc.calcService.LatestResult() != nil,
		CalculationCount: stats.TotalCalculations,
		Locale:           loc.Tag.String(),
		Currency:         loc.Unit.String(),
	}
}

// ApplicationState represents the current state of the application.
type ApplicationState struct {
	Inputs           models.TipRequest
	HasResult        bool
	CalculationCount int
	Locale           string
	Currency         string
}

// Event system methods

// initializeEventHandlers sets up default event handlers.
func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener(EventTipCalculated, mc.onTipCalculated)
	mc.addEventListener(EventInputsReset, mc.onInputsReset)
	mc.addEventListener(EventLocaleChanged, mc.onLocaleChanged)
}

// setupViewEventHandlers connects view events to controller methods.
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetBillAmountHandler(mc.HandleBillAmountChanged)
	mc.mainView.SetTipPercentHandler(mc.HandleTipPercentChanged)
	mc.mainView.SetRoundUpHandler(mc.HandleRoundUpChanged)
	mc.mainView.SetPartySizeHandler(mc.HandlePartySizeChanged)
	mc.mainView.SetCurrencyHandler(mc.HandleCurrencyChanged)
	mc.mainView.SetResetHandler(mc.HandleReset)
}

// addEventListener adds an event handler for a specific event type.
func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	if mc.eventHandlers[eventType] == nil {
		mc.eventHandlers[eventType] = make([]EventHandler, 0)
	}
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent triggers all handlers for a specific event type.
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		go func(h EventHandler) {
			if err := h(data); err != nil {
				mc.log.Error(fmt.Sprintf("event handler failed (%s)", eventType), err, nil)
			}
		}(handler)
	}
}

// Event handlers

// onTipCalculated handles tip calculation events.
func (mc *MainController) onTipCalculated(data interface{}) error {
	breakdown, ok := data.(models.TipBreakdown)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventTipCalculated)
	}

	mc.log.Debug("tip calculated", map[string]interface{}{
		"tip":   breakdown.FormattedTip,
		"total": breakdown.FormattedTotal,
	})
	return nil
}

// onInputsReset handles input reset events.
func (mc *MainController) onInputsReset(data interface{}) error {
	if _, ok := data.(models.TipRequest); !ok {
		return fmt.Errorf("invalid data type for %s event", EventInputsReset)
	}

	mc.log.Info("inputs reset to defaults", nil)
	return nil
}

// onLocaleChanged handles locale change events.
func (mc *MainController) onLocaleChanged(data interface{}) error {
	loc, ok := data.(money.Locale)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventLocaleChanged)
	}

	mc.log.Info("display locale changed", map[string]interface{}{
		"locale":   loc.Tag.String(),
		"currency": loc.Unit.String(),
	})
	return nil
}

// handleError logs an error and surfaces it in the view.
func (mc *MainController) handleError(title string, err error) {
	mc.log.Error(title, err, nil)

	if mc.mainView != nil {
		mc.mainView.ShowError(title, err)
	}
}

// Shutdown performs cleanup when the application closes.
func (mc *MainController) Shutdown() {
	state := mc.GetApplicationState()
	mc.log.Info("controller shutting down", map[string]interface{}{
		"calculations": state.CalculationCount,
	})
}
