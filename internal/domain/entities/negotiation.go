package entities

// Negotiation roles
const (
	NegotiationRoleFounder  = "founder"
	NegotiationRoleInvestor = "investor"
)

// NegotiationMessage is one turn in the founder/investor term negotiation.
type NegotiationMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}

// NegotiationProgress is the verdict of the progress checker over an ongoing
// negotiation. The zero value means "keep talking".
type NegotiationProgress struct {
	ShouldCancel bool `json:"should_cancel"`
	ShowWarning  bool `json:"show_warning"`
}

// MinNegotiationTurns is the number of messages a session needs before the
// progress checker consults the model at all.
const MinNegotiationTurns = 6
