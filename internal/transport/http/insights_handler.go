// Package http contains the chi handlers that expose the insights
// engine as read-only JSON endpoints.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "savrainsights/internal/errors"
	"savrainsights/internal/insights"
	"savrainsights/internal/services"
)

// InsightsHandler handles the analytical query endpoints.
type InsightsHandler struct {
	service *services.InsightsService
	logger  *slog.Logger
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(service *services.InsightsService, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{service: service, logger: logger}
}

// RegisterRoutes registers the insights routes.
func (h *InsightsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/leaderboard", h.GetLeaderboard)
	r.Get("/teachers", h.GetTeachers)
	r.Get("/teacher/{name}", h.GetTeacher)
	r.Get("/grades", h.GetGrades)
	r.Get("/grade/{grade}", h.GetGrade)
	r.Get("/overall", h.GetOverall)
}

// GetLeaderboard returns all teachers ranked by normalized score.
func (h *InsightsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.service.Leaderboard(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"leaderboard": ranks})
}

// GetTeachers returns the teacher identities in leaderboard order.
func (h *InsightsHandler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.Teachers(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"teachers": teachers})
}

// GetTeacher returns the drill-down profile for one teacher.
func (h *InsightsHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	profile, err := h.service.TeacherProfile(r.Context(), name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, profile)
}

// GetGrades returns all observed grades, ascending.
func (h *InsightsHandler) GetGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.service.Grades(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"grades": grades})
}

// GetGrade returns the drill-down profile for one grade.
func (h *InsightsHandler) GetGrade(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "grade")
	grade, err := strconv.Atoi(param)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.InvalidParameter("grade", "Grade must be an integer")))
		return
	}

	profile, err := h.service.GradeProfile(r.Context(), grade)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, profile)
}

// GetOverall returns the dashboard summary.
func (h *InsightsHandler) GetOverall(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Overall(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// renderError maps domain errors onto API error responses. Not-found is
// a normal negative result; anything else from the service is a failed
// dataset load.
func (h *InsightsHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierrors.APIError
	switch {
	case errors.Is(err, insights.ErrTeacherNotFound):
		apiErr = apierrors.TeacherNotFound(chi.URLParam(r, "name"))
	case errors.Is(err, insights.ErrGradeNotFound):
		apiErr = apierrors.GradeNotFound(chi.URLParam(r, "grade"))
	default:
		h.logger.ErrorContext(r.Context(), "query failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		apiErr = apierrors.DataLoadFailed(err)
	}
	render.Render(w, r, apierrors.NewErrorResponse(apiErr))
}
