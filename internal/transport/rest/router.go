package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"surveyhub/internal/service"
	"surveyhub/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	SurveyService   *service.SurveyService
	ResponseService *service.ResponseService
	StatsService    *service.StatsService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.StatsService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Survey catalog
	api.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}/responses/stats", responseHandler.Stats).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}/responses", responseHandler.ListBySurvey).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")

	// Templates
	api.HandleFunc("/templates", surveyHandler.ListTemplates).Methods("GET", "OPTIONS")
	api.HandleFunc("/templates/{templateId}/create-survey", surveyHandler.CreateFromTemplate).Methods("POST", "OPTIONS")
	api.HandleFunc("/init-templates", surveyHandler.InitTemplates).Methods("POST", "OPTIONS")

	// Responses
	api.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
