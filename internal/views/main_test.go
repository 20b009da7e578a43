package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/language"

	"tiptally/internal/i18n"
	"tiptally/internal/models"
	"tiptally/internal/money"
	"tiptally/internal/views/components"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()

	window := test.NewApp().NewWindow("test")
	return NewMainView(window, i18n.NewCatalog(language.AmericanEnglish))
}

func TestMainViewHandlerForwarding(t *testing.T) {
	view := newTestView(t)

	var billText, tipText, currency string
	var roundUp bool
	var partySize int
	resets := 0

	view.SetBillAmountHandler(func(text string) { billText = text })
	view.SetTipPercentHandler(func(text string) { tipText = text })
	view.SetRoundUpHandler(func(checked bool) { roundUp = checked })
	view.SetPartySizeHandler(func(size int) { partySize = size })
	view.SetCurrencyHandler(func(code string) { currency = code })
	view.SetResetHandler(func() { resets++ })

	view.billPanel.SetText("42")
	view.tipSelector.Select("20%")
	view.optionsPanel.SetRoundUp(true)
	view.optionsPanel.SetPartySize(3)
	view.optionsPanel.SetCurrency("GBP")

	var resetButton *widget.Button
	for _, obj := range view.optionsPanel.GetContainer().Objects {
		if button, ok := obj.(*widget.Button); ok {
			resetButton = button
		}
	}
	if resetButton == nil {
		t.Fatal("Expected a reset button in the options panel")
	}
	test.Tap(resetButton)

	if billText != "42" {
		t.Errorf("Expected bill handler to receive '42', got '%s'", billText)
	}
	if tipText != "20%" {
		t.Errorf("Expected tip handler to receive '20%%', got '%s'", tipText)
	}
	if !roundUp {
		t.Error("Expected round-up handler to receive true")
	}
	if partySize != 3 {
		t.Errorf("Expected party size handler to receive 3, got %d", partySize)
	}
	if currency != "GBP" {
		t.Errorf("Expected currency handler to receive 'GBP', got '%s'", currency)
	}
	if resets != 1 {
		t.Errorf("Expected 1 reset call, got %d", resets)
	}
}

func TestMainViewInputWithoutHandlers(t *testing.T) {
	view := newTestView(t)

	// Component events before the controller is attached must not panic.
	view.billPanel.SetText("10")
	view.tipSelector.Select("18%")
	view.optionsPanel.SetRoundUp(true)
}

func TestMainViewUpdateBreakdown(t *testing.T) {
	view := newTestView(t)

	view.UpdateBreakdown(models.TipBreakdown{
		FormattedTip:       "$3.00",
		FormattedTotal:     "$23.00",
		FormattedPerPerson: "$23.00",
	})

	if view.resultPanel.TipText() != "$3.00" {
		t.Errorf("Expected tip '$3.00', got '%s'", view.resultPanel.TipText())
	}
	if view.resultPanel.TotalText() != "$23.00" {
		t.Errorf("Expected total '$23.00', got '%s'", view.resultPanel.TotalText())
	}
	if view.resultPanel.PerPersonText() != "$23.00" {
		t.Errorf("Expected per-person '$23.00', got '%s'", view.resultPanel.PerPersonText())
	}
}

func TestMainViewUpdateLocaleInfo(t *testing.T) {
	view := newTestView(t)

	loc, err := money.ParseLocale("de-DE", "")
	if err != nil {
		t.Fatalf("Expected locale parse to succeed, got %v", err)
	}

	view.UpdateLocaleInfo(loc)

	if view.optionsPanel.Currency() != "EUR" {
		t.Errorf("Expected currency 'EUR', got '%s'", view.optionsPanel.Currency())
	}
}

func TestMainViewApplyDefaults(t *testing.T) {
	view := newTestView(t)

	view.billPanel.SetText("99")
	view.tipSelector.SetCustomPercent("33")
	view.optionsPanel.SetRoundUp(true)
	view.optionsPanel.SetPartySize(7)

	view.ApplyDefaults()

	state := view.GetViewState()
	if state.BillText != "" {
		t.Errorf("Expected empty bill text, got '%s'", state.BillText)
	}
	if state.TipPercentText != components.DefaultTipOption {
		t.Errorf("Expected tip '%s', got '%s'", components.DefaultTipOption, state.TipPercentText)
	}
	if state.CustomTip {
		t.Error("Expected custom tip to be inactive")
	}
	if state.RoundUp {
		t.Error("Expected round-up to be unchecked")
	}
	if state.PartySize != 1 {
		t.Errorf("Expected party size 1, got %d", state.PartySize)
	}
}

func TestMainViewStateRoundTrip(t *testing.T) {
	view := newTestView(t)

	states := []ViewState{
		{
			BillText:       "57.80",
			TipPercentText: "23",
			CustomTip:      true,
			RoundUp:        true,
			PartySize:      5,
			Currency:       "CAD",
			StatusMessage:  "Ready",
		},
		{
			BillText:       "12",
			TipPercentText: "20%",
			CustomTip:      false,
			RoundUp:        false,
			PartySize:      2,
			Currency:       "CAD",
			StatusMessage:  "Ready",
		},
	}

	for i, state := range states {
		view.ApplyViewState(state)

		if got := view.GetViewState(); got != state {
			t.Errorf("State %d: expected %+v, got %+v", i, state, got)
		}
	}
}

func TestMainViewWindowContent(t *testing.T) {
	view := newTestView(t)

	if view.GetWindow().Content() != view.GetContainer() {
		t.Error("Expected view container to be the window content")
	}
}
