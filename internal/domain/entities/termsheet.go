package entities

// UseOfFunds breaks the investment down into spending buckets (percentages).
type UseOfFunds struct {
	Product    int `json:"product"`
	Hiring     int `json:"hiring"`
	Marketing  int `json:"marketing"`
	Operations int `json:"operations"`
}

// DealTerms holds the legal shape of the offer.
type DealTerms struct {
	BoardSeat             string `json:"board_seat"`
	LiquidationPreference string `json:"liquidation_preference"`
	ProRataRights         string `json:"pro_rata_rights"`
	VestingSchedule       string `json:"vesting_schedule"`
}

// TermSheet is the structured investment offer drafted at the end of the
// negotiation flow.
type TermSheet struct {
	InvestmentAmount int64      `json:"investment_amount"`
	Valuation        int64      `json:"valuation"`
	EquityPercentage float64    `json:"equity_percentage"`
	UseOfFunds       UseOfFunds `json:"use_of_funds"`
	Terms            DealTerms  `json:"terms"`
	Milestones       []string   `json:"milestones"`
	NextSteps        []string   `json:"next_steps"`
	Notes            string     `json:"notes"`
}

// FallbackTermSheet is the error-tagged record returned when drafting fails.
func FallbackTermSheet() TermSheet {
	return TermSheet{
		Milestones: []string{},
		NextSteps:  []string{},
		Notes:      "Term sheet could not be generated from this session. The deal terms shown are pending; rerun the negotiation to draft them.",
	}
}
