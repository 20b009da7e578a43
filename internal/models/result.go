package models

import "time"

// TipRequest captures the calculator inputs for one evaluation.
type TipRequest struct {
	BillAmount float64
	TipPercent float64
	RoundUp    bool
	PartySize  int
}

// TipBreakdown contains the outcome of one evaluation: the numeric amounts
// and the localized strings shown on screen.
type TipBreakdown struct {
	Request            TipRequest
	Tip                float64
	Total              float64
	PerPerson          float64
	FormattedTip       string
	FormattedTotal     string
	FormattedPerPerson string
	Currency           string
	ComputedAt         time.Time
	Duration           time.Duration
}
