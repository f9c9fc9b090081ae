package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/blog"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type BlogHandler interface {
	ListPublished(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BlogHandlerImpl struct {
	blogService blog.BlogService
}

func NewBlogHandler(blogService blog.BlogService) BlogHandler {
	return &BlogHandlerImpl{blogService: blogService}
}

// ListPublished serves the public website feed.
func (h *BlogHandlerImpl) ListPublished(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListBlogs(r.Context(), true)
	if err != nil {
		slog.Error("ListBlogs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, blogs)
}

// List serves the admin view including drafts.
func (h *BlogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListBlogs(r.Context(), false)
	if err != nil {
		slog.Error("ListBlogs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, blogs)
}

// Get implements BlogHandler.
func (h *BlogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.blogService.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements BlogHandler.
func (h *BlogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq blog.CreateBlogRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateBlog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.blogService.CreateBlog(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateBlog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Blog created", created)
}

// Update implements BlogHandler.
func (h *BlogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq blog.UpdateBlogRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateBlog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.blogService.UpdateBlog(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateBlog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements BlogHandler.
func (h *BlogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteBlog service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Blog deleted", nil)
}
