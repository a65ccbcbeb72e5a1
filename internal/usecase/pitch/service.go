package pitch

import (
	"context"
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// analysisPrompt is the fixed instruction sent with every analysis request.
const analysisPrompt = `You are a senior venture capital analyst. Review the attached pitch materials (video, report, or both) and produce an investment analysis.

Score the pitch from 0 to 100 for overall fundability. Extract the company name, write a two-sentence summary, list the strongest points and the biggest concerns, and rate market size, scalability and innovation from 0 to 100 each.

Be specific and reference the materials. Return only the JSON object described by the response schema.`

// Generator is the slice of the Gemini client this service needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.Request) (string, error)
}

// Upload is one raw uploaded file with its MIME type.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
}

// AnalyzeInput collects the optional pitch materials. At least one of the
// three must be present.
type AnalyzeInput struct {
	Video      *Upload
	ReportFile *Upload
	ReportText string
}

// Service defines the pitch analysis entry point.
type Service interface {
	AnalyzePitch(ctx context.Context, input AnalyzeInput) (*entities.AnalysisResult, error)
}

type pitchService struct {
	generator Generator
	parser    *Parser
	logger    *zap.Logger
}

// NewService constructs the pitch analysis service.
func NewService(generator Generator, logger *zap.Logger) Service {
	return &pitchService{
		generator: generator,
		parser:    NewParser(),
		logger:    logger,
	}
}

// AnalyzePitch encodes the uploaded materials into a multi-part request with
// the fixed instruction prompt and a declared response schema, then parses
// the model output into an AnalysisResult. Unlike the simulations, failures
// here propagate to the caller: without an analysis there is no demo to keep
// alive.
func (s *pitchService) AnalyzePitch(ctx context.Context, input AnalyzeInput) (*entities.AnalysisResult, error) {
	if input.Video == nil && input.ReportFile == nil && input.ReportText == "" {
		return nil, entities.ErrNoPitchMaterial
	}

	parts := []gemini.Part{gemini.TextPart(analysisPrompt)}
	if input.Video != nil {
		parts = append(parts, mediaPart(input.Video, "video/mp4"))
	}
	if input.ReportFile != nil {
		parts = append(parts, mediaPart(input.ReportFile, "application/pdf"))
	}
	if input.ReportText != "" {
		parts = append(parts, gemini.TextPart("Pitch report text:\n"+input.ReportText))
	}

	raw, err := s.generator.GenerateContent(ctx, gemini.Request{
		Parts:          parts,
		ResponseSchema: analysisSchema(),
		Temperature:    0.3,
		MaxTokens:      4096,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.parser.ParseAnalysis(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse analysis response", zap.Error(err))
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("pitch analyzed",
			zap.String("company", result.CompanyName),
			zap.Int("score", result.Score),
		)
	}
	return result, nil
}

// mediaPart base64-encodes an upload into an inline data part. The declared
// MIME type wins when the browser supplied one; fallback covers curl uploads.
func mediaPart(u *Upload, fallbackMime string) gemini.Part {
	mime := u.MimeType
	if mime == "" || mime == "application/octet-stream" {
		mime = fallbackMime
	}
	return gemini.MediaPart(mime, base64.StdEncoding.EncodeToString(u.Data))
}

// analysisSchema declares the AnalysisResult JSON shape to the model.
func analysisSchema() *gemini.Schema {
	return gemini.Object(map[string]*gemini.Schema{
		"score":        gemini.Integer(),
		"company_name": gemini.String(),
		"summary":      gemini.String(),
		"pros":         gemini.Array(gemini.String()),
		"cons":         gemini.Array(gemini.String()),
		"metrics": gemini.Object(map[string]*gemini.Schema{
			"market_size": gemini.Integer(),
			"scalability": gemini.Integer(),
			"innovation":  gemini.Integer(),
		}, "market_size", "scalability", "innovation"),
	}, "score", "company_name", "summary", "pros", "cons", "metrics")
}
