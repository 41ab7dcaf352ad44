// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package about

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
)

const multipartMemoryLimit = 8 << 20

// Handler exposes the About page: one public read, curator writes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public endpoint.
func (handler *Handler) Routes(router chi.Router) {
	router.Get("/about", handler.page)
}

// AdminRoutes mounts the curator endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Put("/about", handler.updateContent)
	router.Route("/about/team", func(r chi.Router) {
		r.Post("/", handler.createMember)
		r.Put("/{id}", handler.updateMember)
		r.Put("/{id}/portrait", handler.setPortrait)
		r.Delete("/{id}", handler.deleteMember)
	})
}

func (handler *Handler) page(w http.ResponseWriter, r *http.Request) {
	page, err := handler.service.Page(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, page)
}

type contentPayload struct {
	Content string `json:"content"`
}

func (handler *Handler) updateContent(w http.ResponseWriter, r *http.Request) {
	var payload contentPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	page, err := handler.service.UpdateContent(r.Context(), payload.Content)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, page)
}

func parseIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(request.Param(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Team member")
	}
	return id, nil
}

func (handler *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	var input MemberInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	member, err := handler.service.CreateTeamMember(r.Context(), input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, member)
}

func (handler *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var input MemberInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	member, err := handler.service.UpdateTeamMember(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, member)
}

func (handler *Handler) setPortrait(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respond.Error(w, r, apperr.Unprocessable("Expected a multipart upload"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, apperr.Unprocessable("Missing file field"))
		return
	}
	defer file.Close()

	member, err := handler.service.SetPortrait(r.Context(), id, file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, member)
}

func (handler *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.DeleteTeamMember(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
