package entities

// ClaimCategory groups due diligence claims by the area they probe.
type ClaimCategory string

const (
	ClaimCategoryMarket    ClaimCategory = "Market"
	ClaimCategoryFinancial ClaimCategory = "Financial"
	ClaimCategoryTeam      ClaimCategory = "Team"
	ClaimCategoryProduct   ClaimCategory = "Product"
)

// ClaimStatus constants
const (
	ClaimStatusUnverified = "unverified"
	ClaimStatusVerified   = "verified"
	ClaimStatusDisputed   = "disputed"
)

// DueDiligenceClaim is one factual assertion extracted from the pitch,
// paired with the question an investor would ask to probe it.
type DueDiligenceClaim struct {
	ID              string        `json:"id"`
	Claim           string        `json:"claim"`
	Category        ClaimCategory `json:"category"`
	Status          string        `json:"status"`
	ProbingQuestion string        `json:"probing_question"`
}

// NormalizeClaimCategory maps free-form model output onto a known category.
// Anything unrecognized lands in Market.
func NormalizeClaimCategory(raw string) ClaimCategory {
	switch ClaimCategory(raw) {
	case ClaimCategoryMarket, ClaimCategoryFinancial, ClaimCategoryTeam, ClaimCategoryProduct:
		return ClaimCategory(raw)
	}
	return ClaimCategoryMarket
}
