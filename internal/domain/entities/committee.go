package entities

// CommitteeAgent identifies one of the three simulated committee personas.
type CommitteeAgent string

const (
	CommitteeAgentTech   CommitteeAgent = "tech"
	CommitteeAgentRisk   CommitteeAgent = "risk"
	CommitteeAgentVision CommitteeAgent = "vision"
)

// CommitteeMessage is a single utterance in the simulated investment
// committee debate.
type CommitteeMessage struct {
	ID    string         `json:"id"`
	Agent CommitteeAgent `json:"agent"`
	Text  string         `json:"text"`
}

// NormalizeCommitteeAgent maps free-form model output onto a known persona.
// Anything unrecognized is attributed to vision.
func NormalizeCommitteeAgent(raw string) CommitteeAgent {
	switch CommitteeAgent(raw) {
	case CommitteeAgentTech, CommitteeAgentRisk, CommitteeAgentVision:
		return CommitteeAgent(raw)
	}
	return CommitteeAgentVision
}
