package models

import (
	"sync"

	"tiptally/internal/calc"
)

// DefaultPartySize is the number of people a new bill is split across.
const DefaultPartySize = 1

// maxHistorySize caps how many past breakdowns the repository retains.
const maxHistorySize = 10

// CalculatorState manages the transient calculator inputs and the history of
// computed breakdowns. Inputs live only for the current run; nothing is
// persisted across launches.
type CalculatorState struct {
	mu         sync.RWMutex
	billAmount float64
	tipPercent float64
	roundUp    bool
	partySize  int
	history    []TipBreakdown
}

// NewCalculatorState creates calculator state with the standard defaults:
// an empty bill, the default tip percentage, no rounding, and a party of one.
func NewCalculatorState() *CalculatorState {
	return &CalculatorState{
		tipPercent: calc.DefaultTipPercent,
		partySize:  DefaultPartySize,
		history:    make([]TipBreakdown, 0),
	}
}

// Snapshot returns a consistent copy of the current inputs.
func (s *CalculatorState) Snapshot() TipRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return TipRequest{
		BillAmount: s.billAmount,
		TipPercent: s.tipPercent,
		RoundUp:    s.roundUp,
		PartySize:  s.partySize,
	}
}

// SetBillAmount stores the bill amount. Negative amounts are rejected; text
// coercion upstream maps unparsable input to zero before reaching here.
func (s *CalculatorState) SetBillAmount(amount float64) error {
	if amount < 0 {
		return NewValidationError("billAmount", amount, "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.billAmount = amount
	return nil
}

// BillAmount returns the current bill amount.
func (s *CalculatorState) BillAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.billAmount
}

// SetTipPercent stores the tip percentage. Any value is accepted, including
// negative percentages, which produce a discount-style tip.
func (s *CalculatorState) SetTipPercent(percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tipPercent = percent
}

// TipPercent returns the current tip percentage.
func (s *CalculatorState) TipPercent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tipPercent
}

// SetRoundUp stores whether the tip is rounded up to a whole amount.
func (s *CalculatorState) SetRoundUp(roundUp bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roundUp = roundUp
}

// RoundUp returns whether round-up is enabled.
func (s *CalculatorState) RoundUp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roundUp
}

// SetPartySize stores how many people share the bill.
func (s *CalculatorState) SetPartySize(size int) error {
	if size < 1 {
		return NewValidationError("partySize", size, "must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.partySize = size
	return nil
}

// PartySize returns how many people share the bill.
func (s *CalculatorState) PartySize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.partySize
}

// Reset restores all inputs to their defaults.
func (s *CalculatorState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.billAmount = 0
	s.tipPercent = calc.DefaultTipPercent
	s.roundUp = false
	s.partySize = DefaultPartySize
}

// RecordResult appends a computed breakdown to the history, evicting the
// oldest entry once the cap is reached.
func (s *CalculatorState) RecordResult(result TipBreakdown) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, result)
	if len(s.history) > maxHistorySize {
		s.history = s.history[1:]
	}
}

// LatestResult returns the most recent breakdown, or nil when nothing has
// been computed yet.
func (s *CalculatorState) LatestResult() *TipBreakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		return nil
	}

	latest := s.history[len(s.history)-1]
	return &latest
}

// History returns a copy of the recorded breakdowns, oldest first.
func (s *CalculatorState) History() []TipBreakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]TipBreakdown, len(s.history))
	copy(history, s.history)
	return history
}

// ClearHistory removes all recorded breakdowns.
func (s *CalculatorState) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]TipBreakdown, 0)
}

// StateStats contains statistics about the calculator state.
type StateStats struct {
	CalculationCount int
	HasResult        bool
}

// Stats returns statistics about the recorded history.
func (s *CalculatorState) Stats() StateStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StateStats{
		CalculationCount: len(s.history),
		HasResult:        len(s.history) > 0,
	}
}

// Shutdown releases held state.
func (s *CalculatorState) Shutdown() {
	s.ClearHistory()
}
