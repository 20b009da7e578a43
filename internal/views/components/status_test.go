package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestStatusBarDefaults(t *testing.T) {
	test.NewApp()

	bar := NewStatusBar(newTestCatalog())

	if bar.GetStatus() != "Ready" {
		t.Errorf("Expected status 'Ready', got '%s'", bar.GetStatus())
	}
	if bar.localeInfo.Text != placeholderValue {
		t.Errorf("Expected locale placeholder, got '%s'", bar.localeInfo.Text)
	}
	if bar.calcInfo.Text != placeholderValue {
		t.Errorf("Expected calculation placeholder, got '%s'", bar.calcInfo.Text)
	}
}

func TestStatusBarCalculationCount(t *testing.T) {
	test.NewApp()

	bar := NewStatusBar(newTestCatalog())

	bar.SetCalculationCount(1)
	if bar.calcInfo.Text != "1 calculation" {
		t.Errorf("Expected '1 calculation', got '%s'", bar.calcInfo.Text)
	}

	bar.SetCalculationCount(5)
	if bar.calcInfo.Text != "5 calculations" {
		t.Errorf("Expected '5 calculations', got '%s'", bar.calcInfo.Text)
	}

	bar.SetCalculationCount(0)
	if bar.calcInfo.Text != placeholderValue {
		t.Errorf("Expected placeholder for zero count, got '%s'", bar.calcInfo.Text)
	}
}

func TestStatusBarReset(t *testing.T) {
	test.NewApp()

	bar := NewStatusBar(newTestCatalog())

	bar.SetStatus("Calculating")
	bar.SetLocaleInfo("en-US/USD")
	bar.SetCalculationCount(3)

	if bar.localeInfo.Text != "en-US/USD" {
		t.Errorf("Expected locale info 'en-US/USD', got '%s'", bar.localeInfo.Text)
	}

	bar.Reset()

	if bar.GetStatus() != "Ready" {
		t.Errorf("Expected status 'Ready' after reset, got '%s'", bar.GetStatus())
	}
	if bar.localeInfo.Text != placeholderValue {
		t.Errorf("Expected locale placeholder after reset, got '%s'", bar.localeInfo.Text)
	}
	if bar.calcInfo.Text != placeholderValue {
		t.Errorf("Expected calculation placeholder after reset, got '%s'", bar.calcInfo.Text)
	}
}
