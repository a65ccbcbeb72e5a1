package simulation

import (
	"fmt"
	"strings"

	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// analysisContext renders the prior analysis into the prompt preamble every
// simulation shares.
func analysisContext(analysis *entities.AnalysisResult) string {
	if analysis == nil {
		return "No prior analysis is available; assume an early-stage startup pitch."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", analysis.CompanyName)
	fmt.Fprintf(&b, "Overall score: %d/100\n", analysis.Score)
	fmt.Fprintf(&b, "Summary: %s\n", analysis.Summary)
	if len(analysis.Pros) > 0 {
		fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(analysis.Pros, "; "))
	}
	if len(analysis.Cons) > 0 {
		fmt.Fprintf(&b, "Concerns: %s\n", strings.Join(analysis.Cons, "; "))
	}
	fmt.Fprintf(&b, "Metrics: market size %d, scalability %d, innovation %d\n",
		analysis.Metrics.MarketSize, analysis.Metrics.Scalability, analysis.Metrics.Innovation)
	return b.String()
}

// transcript renders a negotiation history for the model.
func transcript(history []entities.NegotiationMessage) string {
	var b strings.Builder
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Text)
	}
	return b.String()
}

func buildClaimsPrompt(analysis *entities.AnalysisResult) string {
	return fmt.Sprintf(`You are running due diligence on a startup after this pitch analysis:

%s
Extract 4 to 6 factual claims the founders are implicitly making, one per area where possible. Categorize each claim as Market, Financial, Team or Product, mark its status as unverified, and write the single probing question an investor would ask to test it. Return only JSON matching the schema.`, analysisContext(analysis))
}

func buildCommitteePrompt(analysis *entities.AnalysisResult) string {
	return fmt.Sprintf(`Simulate an investment committee debating this deal:

%s
Three partners speak in turn: "tech" (deep technical diligence, skeptical of hand-waving), "risk" (downside scenarios, cap table, burn), and "vision" (market narrative, founder quality, upside). Write 6 to 9 short messages of genuine disagreement that reference the analysis above, ending without a unanimous verdict. Return only JSON matching the schema.`, analysisContext(analysis))
}

func buildBoardPrompt(analysis *entities.AnalysisResult, round int) string {
	if round < 1 {
		round = 1
	}
	return fmt.Sprintf(`The investment closed. You are writing round %d of a post-investment board crisis simulation for this company:

%s
Jump forward in time (label the jump, e.g. "18 months later") and present one concrete crisis the board must address. Offer exactly 3 choices; for each, write the consequence the founder would face. Later rounds escalate from earlier ones. Return only JSON matching the schema.`, round, analysisContext(analysis))
}

func buildNegotiationPrompt(analysis *entities.AnalysisResult, history []entities.NegotiationMessage, userMessage string) string {
	return fmt.Sprintf(`You are a seasoned VC negotiating terms with a founder after this analysis:

%s
Conversation so far:
%s
The founder just said: %q

Reply in character: firm on valuation discipline, open to creative structure, never hostile. Two to four sentences. Return only JSON matching the schema.`, analysisContext(analysis), transcript(history), userMessage)
}

func buildProgressPrompt(history []entities.NegotiationMessage) string {
	return fmt.Sprintf(`Review this term negotiation between a founder and an investor:

%s
Decide whether the session has stopped making progress. Set should_cancel only when the parties are plainly at an impasse or the founder has become unprofessional; set show_warning when talks are circling without converging. Return only JSON matching the schema.`, transcript(history))
}

func buildTermSheetPrompt(analysis *entities.AnalysisResult, history []entities.NegotiationMessage) string {
	return fmt.Sprintf(`Draft a term sheet closing this negotiation:

%s
Negotiation transcript:
%s
Honor amounts and concessions agreed in the transcript; fill gaps with terms consistent with the analysis. Amounts are in US dollars, equity_percentage is 0-100, use_of_funds percentages sum to 100. Return only JSON matching the schema.`, analysisContext(analysis), transcript(history))
}

// Response schemas

func claimsSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"claims": gemini.Array(gemini.Object(map[string]*gemini.Schema{
			"id":               gemini.String(),
			"claim":            gemini.String(),
			"category":         gemini.StringEnum("Market", "Financial", "Team", "Product"),
			"status":           gemini.String(),
			"probing_question": gemini.String(),
		}, "claim", "category", "probing_question")),
	}, "claims")
}

func committeeSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"messages": gemini.Array(gemini.Object(map[string]*gemini.Schema{
			"id":    gemini.String(),
			"agent": gemini.StringEnum("tech", "risk", "vision"),
			"text":  gemini.String(),
		}, "agent", "text")),
	}, "messages")
}

func boardSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"id":          gemini.String(),
		"title":       gemini.String(),
		"description": gemini.String(),
		"time_jump":   gemini.String(),
		"choices": gemini.Array(gemini.Object(map[string]*gemini.Schema{
			"id":          gemini.String(),
			"label":       gemini.String(),
			"consequence": gemini.String(),
		}, "label", "consequence")),
	}, "title", "description", "time_jump", "choices")
}

func replySchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"text": gemini.String(),
	}, "text")
}

func progressSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"should_cancel": gemini.Boolean(),
		"show_warning":  gemini.Boolean(),
	}, "should_cancel", "show_warning")
}

func termSheetSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"investment_amount": gemini.Integer(),
		"valuation":         gemini.Integer(),
		"equity_percentage": gemini.Number(),
		"use_of_funds": gemini.Object(map[string]*gemini.Schema{
			"product":    gemini.Integer(),
			"hiring":     gemini.Integer(),
			"marketing":  gemini.Integer(),
			"operations": gemini.Integer(),
		}, "product", "hiring", "marketing", "operations"),
		"terms": gemini.Object(map[string]*gemini.Schema{
			"board_seat":             gemini.String(),
			"liquidation_preference": gemini.String(),
			"pro_rata_rights":        gemini.String(),
			"vesting_schedule":       gemini.String(),
		}, "board_seat", "liquidation_preference", "pro_rata_rights", "vesting_schedule"),
		"milestones": gemini.Array(gemini.String()),
		"next_steps": gemini.Array(gemini.String()),
		"notes":      gemini.String(),
	}, "investment_amount", "valuation", "equity_percentage", "use_of_funds", "terms")
}
