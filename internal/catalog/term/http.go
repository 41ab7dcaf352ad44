// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
)

// Handler exposes vocabulary endpoints.
//
// Public routes serve read-only term listings for the search form. Admin
// routes add full CRUD and are mounted behind curator authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public, read-only vocabulary endpoints.
func (handler *Handler) Routes(router chi.Router) {
	router.Get("/terms/{kind}", handler.list)
}

// AdminRoutes mounts the curator CRUD endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/terms/{kind}", func(r chi.Router) {
		r.Get("/", handler.list)
		r.Post("/", handler.create)
		r.Get("/{id}", handler.get)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})
}

// termPayload is the write shape shared by create and update.
type termPayload struct {
	Label         string  `json:"label"`
	LabelAr       *string `json:"label_ar"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"description_ar"`
	Slug          string  `json:"slug"`

	AlternateNames []string `json:"alternate_names"`
	GeonameID      *int     `json:"geonameid"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Country        *string  `json:"country"`
}

func (p *termPayload) toTerm() *Term {
	return &Term{
		Label:          p.Label,
		LabelAr:        p.LabelAr,
		Description:    p.Description,
		DescriptionAr:  p.DescriptionAr,
		Slug:           p.Slug,
		AlternateNames: p.AlternateNames,
		GeonameID:      p.GeonameID,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Country:        p.Country,
	}
}

// parseKindParam resolves the {kind} URL segment. Unknown vocabulary names
// are a routing miss, not a validation failure.
func parseKindParam(r *http.Request) (Kind, error) {
	kind, ok := ParseKind(request.Param(r, "kind"))
	if !ok {
		return "", apperr.NotFound("Vocabulary")
	}
	return kind, nil
}

func parseIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(request.Param(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Term")
	}
	return id, nil
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKindParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	terms, err := handler.service.List(r.Context(), kind)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, terms)
}

func (handler *Handler) get(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKindParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	term, err := handler.service.Get(r.Context(), kind, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, term)
}

func (handler *Handler) create(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKindParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var payload termPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	term := payload.toTerm()
	if err := handler.service.Create(r.Context(), kind, term); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, term)
}

func (handler *Handler) update(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKindParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var payload termPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	term := payload.toTerm()
	term.ID = id
	if err := handler.service.Update(r.Context(), kind, term); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, term)
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKindParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.Delete(r.Context(), kind, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}
