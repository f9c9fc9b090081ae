package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/jobpost"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type JobPostHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type JobPostHandlerImpl struct {
	jobPostService jobpost.JobPostService
}

func NewJobPostHandler(jobPostService jobpost.JobPostService) JobPostHandler {
	return &JobPostHandlerImpl{jobPostService: jobPostService}
}

// ListActive serves the public careers page.
func (h *JobPostHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	posts, err := h.jobPostService.ListJobPosts(r.Context(), true)
	if err != nil {
		slog.Error("ListJobPosts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, posts)
}

// List serves the admin view including inactive posts.
func (h *JobPostHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.jobPostService.ListJobPosts(r.Context(), false)
	if err != nil {
		slog.Error("ListJobPosts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, posts)
}

// Get implements JobPostHandler.
func (h *JobPostHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.jobPostService.GetJobPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements JobPostHandler.
func (h *JobPostHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq jobpost.CreateJobPostRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateJobPost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.jobPostService.CreateJobPost(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateJobPost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job post created", created)
}

// Update implements JobPostHandler.
func (h *JobPostHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq jobpost.UpdateJobPostRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateJobPost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.jobPostService.UpdateJobPost(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateJobPost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements JobPostHandler.
func (h *JobPostHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobPostService.DeleteJobPost(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteJobPost service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job post deleted", nil)
}
