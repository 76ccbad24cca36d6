package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"surveyhub/internal/model"
	"surveyhub/internal/repository"
	"surveyhub/internal/service"
)

// ResponseHandler handles response submission, listing, and statistics
type ResponseHandler struct {
	responseSvc *service.ResponseService
	statsSvc    *service.StatsService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, statsSvc *service.StatsService) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		statsSvc:    statsSvc,
	}
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	SurveyID  string                       `json:"survey_id" validate:"required"`
	Responses map[string]model.AnswerValue `json:"responses"`
}

// Submit handles POST /api/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response, err := h.responseSvc.Submit(r.Context(), req.SurveyID, req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "Survey not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListBySurvey handles GET /api/surveys/{surveyId}/responses
func (h *ResponseHandler) ListBySurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	opts := repository.ListOptions{
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 100),
		SortBy:    queryString(r, "sort_by", "submitted_at"),
		SortOrder: queryString(r, "sort_order", "desc"),
	}

	responses, err := h.responseSvc.List(r.Context(), surveyID, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, responses)
}

// Stats handles GET /api/surveys/{surveyId}/responses/stats
func (h *ResponseHandler) Stats(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	stats, err := h.statsSvc.ComputeStats(r.Context(), surveyID)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, "Survey not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func queryString(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}
