package services

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"tiptally/internal/calc"
	"tiptally/internal/logger"
	"tiptally/internal/models"
	"tiptally/internal/money"
)

// CalculationService evaluates tip requests and renders the localized
// display strings for the current formatter.
type CalculationService struct {
	stateRepo *models.CalculatorState
	log       logger.Logger

	mu                sync.RWMutex
	formatter         money.Formatter
	totalCalculations int
}

// NewCalculationService creates a new calculation service.
func NewCalculationService(stateRepo *models.CalculatorState, formatter money.Formatter, log logger.Logger) *CalculationService {
	return &CalculationService{
		stateRepo: stateRepo,
		formatter: formatter,
		log:       log,
	}
}

// Calculate computes the tip for one request and renders it for display.
// The tip is tipPercent/100 of the amount, optionally rounded up to the
// next whole currency unit.
func (cs *CalculationService) Calculate(amount, tipPercent float64, roundUp bool) string {
	tip := calc.Tip(amount, tipPercent, roundUp)
	return cs.currentFormatter().Format(tip)
}

// Recalculate evaluates the current calculator state, records the breakdown
// in the history, and returns it.
func (cs *CalculationService) Recalculate() models.TipBreakdown {
	start := time.Now()
	req := cs.stateRepo.Snapshot()

	tip := calc.Tip(req.BillAmount, req.TipPercent, req.RoundUp)
	total := calc.Total(req.BillAmount, tip)
	perPerson := calc.PerPerson(total, req.PartySize)

	formatter := cs.currentFormatter()
	breakdown := models.TipBreakdown{
		Request:            req,
		Tip:                tip,
		Total:              total,
		PerPerson:          perPerson,
		FormattedTip:       formatter.Format(tip),
		FormattedTotal:     formatter.Format(total),
		FormattedPerPerson: formatter.Format(perPerson),
		Currency:           currencyCode(formatter),
		ComputedAt:         time.Now(),
		Duration:           time.Since(start),
	}

	cs.stateRepo.RecordResult(breakdown)

	cs.mu.Lock()
	cs.totalCalculations++
	cs.mu.Unlock()

	cs.log.Debug("calculation complete", map[string]interface{}{
		"billAmount": req.BillAmount,
		"tipPercent": req.TipPercent,
		"roundUp":    req.RoundUp,
		"partySize":  req.PartySize,
		"tip":        tip,
		"total":      total,
	})

	return breakdown
}

// SetFormatter swaps the display formatter, typically after a currency or
// locale change. Existing history keeps its original strings.
func (cs *CalculationService) SetFormatter(formatter money.Formatter) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.formatter = formatter
}

// ResetInputs restores the calculator inputs to their defaults.
func (cs *CalculationService) ResetInputs() {
	cs.stateRepo.Reset()
	cs.log.Info("inputs reset", nil)
}

// LatestResult returns the most recent breakdown, or nil before the first
// calculation.
func (cs *CalculationService) LatestResult() *models.TipBreakdown {
	return cs.stateRepo.LatestResult()
}

// History returns the recorded breakdowns, oldest first.
func (cs *CalculationService) History() []models.TipBreakdown {
	return cs.stateRepo.History()
}

// CalculationStats contains calculation performance statistics.
type CalculationStats struct {
	TotalCalculations int
	AverageDuration   time.Duration
	LastCalculation   time.Time
}

// Stats returns calculation performance statistics.
func (cs *CalculationService) Stats() CalculationStats {
	cs.mu.RLock()
	total := cs.totalCalculations
	cs.mu.RUnlock()

	stats := CalculationStats{TotalCalculations: total}

	history := cs.stateRepo.History()
	if len(history) == 0 {
		return stats
	}

	var totalTime time.Duration
	for _, result := range history {
		totalTime += result.Duration
	}
	stats.AverageDuration = totalTime / time.Duration(len(history))
	stats.LastCalculation = history[len(history)-1].ComputedAt

	return stats
}

// Shutdown logs final statistics and releases held state.
func (cs *CalculationService) Shutdown() {
	stats := cs.Stats()
	cs.log.Info("calculation service shutting down", map[string]interface{}{
		"totalCalculations": stats.TotalCalculations,
	})
	cs.stateRepo.Shutdown()
}

func (cs *CalculationService) currentFormatter() money.Formatter {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.formatter
}

func currencyCode(f money.Formatter) string {
	if c, ok := f.(interface{ Currency() string }); ok {
		return c.Currency()
	}
	return ""
}

// CoerceAmount parses bill text into an amount. Empty, unparsable, or
// negative input maps to zero so the calculator always has a usable value.
func CoerceAmount(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// CoercePercent parses tip percent text. Empty input selects the default
// percentage, unparsable input maps to zero, and negative percentages pass
// through unchanged. A trailing percent sign is tolerated.
func CoercePercent(text string) float64 {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if trimmed == "" {
		return calc.DefaultTipPercent
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
