package handler

import (
	"log/slog"
	"net/http"

	"resumecoach/internal/delivery/api/middleware"
	"resumecoach/internal/delivery/api/response"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalysisHandlerParams holds dependencies for AnalysisHandler, injected by Fx.
type AnalysisHandlerParams struct {
	fx.In

	AnalysisUC usecase.AnalysisUsecase
	Logger     *slog.Logger
}

// AnalysisHandler serves resume analysis and its history.
type AnalysisHandler struct {
	analysisUC usecase.AnalysisUsecase
	logger     *slog.Logger
}

// NewAnalysisHandler is the constructor for AnalysisHandler
func NewAnalysisHandler(params AnalysisHandlerParams) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: params.AnalysisUC,
		logger:     params.Logger,
	}
}

// AnalyzeRequest is the body of an analysis request.
type AnalyzeRequest struct {
	Resume         string  `json:"resume" validate:"required"`
	JobDescription *string `json:"job_description"`
}

// AnalyzeResponse is the feedback together with the tips that grounded it.
type AnalyzeResponse struct {
	Feedback    string   `json:"feedback"`
	ContextTips []string `json:"context_tips"`
}

// Analyze runs the analysis pipeline for the authenticated user.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrMissingToken)
	}

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "bind analyze request")
	}

	if err := c.Validate(&req); err != nil {
		return errors.Wrap(invalidFields(domainerrors.ErrResumeRequired, err), "validate analyze request")
	}

	output, err := h.analysisUC.Analyze(c.Request().Context(), usecase.AnalyzeInput{
		UserID:         session.Subject,
		ResumeText:     req.Resume,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, AnalyzeResponse{
		Feedback:    output.Feedback,
		ContextTips: output.ContextTips,
	})
}

// History lists the authenticated user's past analyses, newest first.
func (h *AnalysisHandler) History(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrMissingToken)
	}

	records, err := h.analysisUC.History(c.Request().Context(), session.Subject)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, records)
}
