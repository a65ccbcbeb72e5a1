package entities

// BoardChoice is one option the founder can pick in a board crisis scenario.
type BoardChoice struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Consequence string `json:"consequence"`
}

// BoardScenario is a simulated post-investment crisis presented to the
// founder, typically prefixed with a time jump ("18 months later").
type BoardScenario struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	TimeJump    string        `json:"time_jump"`
	Choices     []BoardChoice `json:"choices"`
}

// FallbackBoardScenario is the error-tagged scenario served when the
// generative call fails; the demo keeps moving on a static crisis.
func FallbackBoardScenario() BoardScenario {
	return BoardScenario{
		ID:          "fallback-cash-crunch",
		Title:       "Cash Runway Alert",
		Description: "Your CFO reports nine months of runway left while your lead competitor just closed a round three times your size. The board expects a plan at tomorrow's meeting.",
		TimeJump:    "12 months later",
		Choices: []BoardChoice{
			{ID: "cut", Label: "Cut burn and extend runway", Consequence: "Growth stalls, but you survive to raise on your own terms."},
			{ID: "raise", Label: "Raise a bridge round now", Consequence: "Dilution hurts, yet the war chest keeps you in the race."},
			{ID: "pivot", Label: "Pivot to the enterprise segment", Consequence: "A risky bet that could double margins or burn six months."},
		},
	}
}
