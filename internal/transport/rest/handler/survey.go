package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"surveyhub/internal/model"
	"surveyhub/internal/service"
)

var validate = validator.New()

// SurveyHandler handles survey and template endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// SurveyRequest is the request body for creating or updating a survey
type SurveyRequest struct {
	Title            string           `json:"title" validate:"required"`
	Description      string           `json:"description"`
	Questions        []model.Question `json:"questions"`
	IsTemplate       bool             `json:"is_template"`
	TemplateCategory string           `json:"template_category"`
}

func (r SurveyRequest) toInput() service.SurveyInput {
	return service.SurveyInput{
		Title:            r.Title,
		Description:      r.Description,
		Questions:        r.Questions,
		IsTemplate:       r.IsTemplate,
		TemplateCategory: r.TemplateCategory,
	}
}

// Create handles POST /api/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	survey, err := h.surveySvc.Create(r.Context(), req.toInput())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /api/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveySvc.List(r.Context(), false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, surveys)
}

// Get handles GET /api/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "Survey not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Update handles PUT /api/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	survey, err := h.surveySvc.Update(r.Context(), surveyID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "Survey not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Delete handles DELETE /api/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	if err := h.surveySvc.Delete(r.Context(), surveyID); err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "Survey not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Survey deleted successfully"})
}

// ListTemplates handles GET /api/templates
func (h *SurveyHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.surveySvc.List(r.Context(), true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, templates)
}

// CreateFromTemplate handles POST /api/templates/{templateId}/create-survey
func (h *SurveyHandler) CreateFromTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusUnprocessableEntity, "title query parameter is required")
		return
	}

	survey, err := h.surveySvc.InstantiateFromTemplate(r.Context(), templateID, title)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, "Template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// InitTemplates handles POST /api/init-templates
func (h *SurveyHandler) InitTemplates(w http.ResponseWriter, r *http.Request) {
	created, err := h.surveySvc.EnsureSeedTemplates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	message := "Templates already initialized"
	if created {
		message = "Templates initialized successfully"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
