package handler

import (
	stdErrors "errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/venturedesk/pitch-simulator/errors"
	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	pitchuse "github.com/venturedesk/pitch-simulator/internal/usecase/pitch"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// PitchController handles the pitch analysis endpoint
type PitchController struct {
	svc    pitchuse.Service
	logger *zap.Logger
}

// NewPitchController creates a new pitch controller
func NewPitchController(svc pitchuse.Service, logger *zap.Logger) *PitchController {
	return &PitchController{svc: svc, logger: logger}
}

// Analyze runs AI analysis over uploaded pitch materials
// @Summary      Analyze pitch materials
// @Description  Accepts an optional pitch video, an optional report file and optional report text, and returns the AI-generated analysis
// @Tags         Pitch
// @Accept       multipart/form-data
// @Produce      json
// @Param        video        formData  file    false  "Pitch video"
// @Param        report_file  formData  file    false  "Pitch report (PDF)"
// @Param        report_text  formData  string  false  "Pitch report as plain text"
// @Success      200  {object}  map[string]interface{}  "Analysis result"
// @Failure      400  {object}  map[string]interface{}  "No pitch material provided"
// @Failure      503  {object}  map[string]interface{}  "AI service not configured"
// @Router       /pitch/analyze [post]
func (pc *PitchController) Analyze(c echo.Context) error {
	input := pitchuse.AnalyzeInput{
		ReportText: strings.TrimSpace(c.FormValue("report_text")),
	}

	video, err := readUpload(c, "video")
	if err != nil {
		return HandleError(pc.logger, c, errors.ErrInvalidPayload())
	}
	input.Video = video

	report, err := readUpload(c, "report_file")
	if err != nil {
		return HandleError(pc.logger, c, errors.ErrInvalidPayload())
	}
	input.ReportFile = report

	result, err := pc.svc.AnalyzePitch(c.Request().Context(), input)
	if err != nil {
		return HandleError(pc.logger, c, mapAnalysisError(err))
	}

	return HandleSuccess(pc.logger, c, result)
}

// readUpload pulls one optional multipart file into memory. A missing file
// is not an error; a broken one is.
func readUpload(c echo.Context, field string) (*pitchuse.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Absent field (or no multipart body at all, for text-only requests).
		return nil, nil
	}
	return uploadFromHeader(fh)
}

func uploadFromHeader(fh *multipart.FileHeader) (*pitchuse.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &pitchuse.Upload{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

// mapAnalysisError translates service failures into the response envelope.
func mapAnalysisError(err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrNoPitchMaterial):
		return errors.ErrMissingPitchInput()
	case stdErrors.Is(err, gemini.ErrMissingAPIKey):
		return errors.ErrAIServiceUnavailable(err)
	default:
		return errors.ErrAIAnalysisFailed(err)
	}
}
