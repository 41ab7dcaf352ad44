// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
)

// Handler exposes the person registry to curators. There is no public
// surface: people appear to visitors only inside item payloads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts the curator CRUD endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/people", func(r chi.Router) {
		r.Get("/", handler.list)
		r.Post("/", handler.create)
		r.Get("/{id}", handler.get)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})
	router.Get("/relators", handler.relators)
}

type personPayload struct {
	Fullname     string  `json:"fullname"`
	CitationName *string `json:"citation_name"`
}

func parseIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(request.Param(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Person")
	}
	return id, nil
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request) {
	people, err := handler.service.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, people)
}

func (handler *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := handler.service.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, p)
}

func (handler *Handler) create(w http.ResponseWriter, r *http.Request) {
	var payload personPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	p := &Person{Fullname: payload.Fullname, CitationName: payload.CitationName}
	if err := handler.service.Create(r.Context(), p); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, p)
}

func (handler *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var payload personPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	p := &Person{ID: id, Fullname: payload.Fullname, CitationName: payload.CitationName}
	if err := handler.service.Update(r.Context(), p); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, p)
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

// relators serves the supported MARC relator set for the contribution form.
func (handler *Handler) relators(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, Relators())
}
