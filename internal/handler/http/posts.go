package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

const defaultPageLimit = 100

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, err := intParam(query.Get("skip"), 0, "query", "skip")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intParam(query.Get("limit"), defaultPageLimit, "query", "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), models.Pagination{Skip: int(skip), Limit: int(limit)})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(chi.URLParam(r, "id"), 0, "path", "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("post_id", post.ID).Msg("post created")

	h.writeJSON(w, r, post, http.StatusCreated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(chi.URLParam(r, "id"), 0, "path", "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("post_id", id).Msg("post deleted")

	w.WriteHeader(http.StatusNoContent)
}
