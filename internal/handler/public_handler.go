package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PublicPages lists published pages, or resolves a single one when a
// slug query parameter is present.
func (h *Handlers) PublicPages(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if slug != "" {
		page, err := h.PageService.GetPublishedPage(r.Context(), slug)
		if err != nil {
			respondError(w, err)
			return
		}
		WriteSuccess(w, page, http.StatusOK)
		return
	}

	pages, err := h.PageService.ListPublishedPages(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, pages, http.StatusOK)
}

func (h *Handlers) PublicBlog(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if slug != "" {
		post, err := h.BlogService.GetPublishedPost(r.Context(), slug)
		if err != nil {
			respondError(w, err)
			return
		}
		WriteSuccess(w, post, http.StatusOK)
		return
	}

	posts, err := h.BlogService.ListPublishedPosts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) PublicCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, files, err := h.CategoryService.PublicCategory(r.Context(), slug)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"category": category,
		"files":    files,
	}, http.StatusOK)
}

func (h *Handlers) PublicHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.HomeService.Home(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, home, http.StatusOK)
}
