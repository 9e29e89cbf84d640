package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/auth"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/handlers"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/middleware"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/store"
)

// SetupRouter wires the HTTP surface. Listing assignments is public;
// assignment detail, every mutation, and all submission routes sit
// behind the session guard.
func SetupRouter(codec *auth.Codec, secure bool, assignments store.AssignmentStore, submissions store.SubmissionStore) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Welcome to the group-study server!"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	requireAuth := middleware.RequireAuth(codec)

	sessionHandler := handlers.NewSessionHandler(codec, secure)
	router.HandleFunc("/jwt", sessionHandler.IssueToken).Methods("POST")
	router.HandleFunc("/logout", sessionHandler.Logout).Methods("POST")

	assignmentHandler := handlers.NewAssignmentHandler(assignments)
	router.HandleFunc("/assignments", assignmentHandler.GetAssignments).Methods("GET")
	router.Handle("/assignments", requireAuth(http.HandlerFunc(assignmentHandler.CreateAssignment))).Methods("POST")
	router.Handle("/assignments/{id}", requireAuth(http.HandlerFunc(assignmentHandler.GetAssignmentByID))).Methods("GET")
	router.Handle("/assignments/{id}", requireAuth(http.HandlerFunc(assignmentHandler.UpdateAssignment))).Methods("PUT")
	router.Handle("/assignments/{id}", requireAuth(http.HandlerFunc(assignmentHandler.DeleteAssignment))).Methods("DELETE")

	submissionHandler := handlers.NewSubmissionHandler(submissions)
	router.Handle("/submissions", requireAuth(http.HandlerFunc(submissionHandler.GetSubmissions))).Methods("GET")
	router.Handle("/submissions", requireAuth(http.HandlerFunc(submissionHandler.CreateSubmission))).Methods("POST")
	router.Handle("/submissions/{id}", requireAuth(http.HandlerFunc(submissionHandler.GradeSubmission))).Methods("PATCH")

	return router
}
