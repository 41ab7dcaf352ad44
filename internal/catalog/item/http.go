// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/catalog/term"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
	"github.com/digital-mary/catalog/pkg/pagination"
)

// Handler exposes the item endpoints.
//
// The public surface is the read-only search and detail pair plus the
// filter-options payload that feeds the search form. All writes live on the
// admin surface.
type Handler struct {
	service *Service
	terms   *term.Service
}

func NewHandler(service *Service, terms *term.Service) *Handler {
	return &Handler{service: service, terms: terms}
}

// Routes mounts the public endpoints.
func (handler *Handler) Routes(router chi.Router) {
	router.Get("/items", handler.list)
	router.Get("/items/{id}", handler.get)
	router.Get("/filters", handler.filterOptions)
}

// AdminRoutes mounts the curator endpoints. Routes are registered flat so
// the media handler can hang its item-scoped routes off the same /items
// subtree.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/items", handler.adminList)
	router.Post("/items", handler.create)
	router.Get("/items/{id}", handler.adminGet)
	router.Put("/items/{id}", handler.update)
	router.Delete("/items/{id}", handler.delete)
}

// summaryView decorates a result card with its rendered date.
type summaryView struct {
	*Summary
	DisplayDate string `json:"display_date"`
}

// detailView decorates an item with its computed display fields.
type detailView struct {
	*Item
	DisplayDate     string   `json:"display_date"`
	CitationAuthors []string `json:"citation_authors"`
}

func summaryViews(summaries []*Summary) []summaryView {
	views := make([]summaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, summaryView{Summary: summary, DisplayDate: summary.DisplayDate()})
	}
	return views
}

func detailViewOf(it *Item) detailView {
	return detailView{
		Item:            it,
		DisplayDate:     it.DisplayDate(),
		CitationAuthors: it.CitationAuthors(),
	}
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := FilterFromQuery(r.URL.Query())

	summaries, total, err := handler.service.Search(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	meta := pagination.NewMeta(filter.Page, constants.PublicItemPageSize, total)
	respond.Paginated(w, summaryViews(summaries), meta)
}

func (handler *Handler) get(w http.ResponseWriter, r *http.Request) {
	it, err := handler.service.Get(r.Context(), request.Param(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, detailViewOf(it))
}

// filterOptions serves the search form's option sets: every vocabulary as
// label/id pairs plus the period choices.
func (handler *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := handler.terms.OptionSets(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, map[string]any{
		"terms":   options,
		"periods": PeriodChoices(),
	})
}

func (handler *Handler) adminList(w http.ResponseWriter, r *http.Request) {
	filter := FilterFromQuery(r.URL.Query())

	summaries, total, err := handler.service.AdminSearch(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	meta := pagination.NewMeta(filter.Page, constants.PublicItemPageSize, total)
	respond.Paginated(w, summaryViews(summaries), meta)
}

func (handler *Handler) adminGet(w http.ResponseWriter, r *http.Request) {
	it, err := handler.service.AdminGet(r.Context(), request.Param(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, detailViewOf(it))
}

// itemPayload is the write shape shared by create and update.
type itemPayload struct {
	Name     string  `json:"name"`
	NameAr   *string `json:"name_ar"`
	IsPublic bool    `json:"is_public"`

	Description             *string `json:"description"`
	DescriptionAr           *string `json:"description_ar"`
	Inscription             *string `json:"inscription"`
	TranslatedInscription   *string `json:"translated_inscription"`
	TranslatedInscriptionAr *string `json:"translated_inscription_ar"`
	CurrentLocation         *string `json:"current_location"`
	Dimensions              *string `json:"dimensions"`
	Interpretations         *string `json:"interpretations"`
	BibliographicReferences *string `json:"bibliographic_references"`

	DisplayDateOverride *string `json:"display_date_override"`
	EarliestCreation    *Period `json:"earliest_creation"`
	LatestCreation      *Period `json:"latest_creation"`

	CultureOther    *string `json:"culture_other"`
	FindspotOther   *string `json:"findspot_other"`
	ProvenanceOther *string `json:"provenance_other"`

	InscriptionStyleID *int `json:"inscription_style_id"`
	FindspotID         *int `json:"findspot_id"`
	ProvenanceID       *int `json:"provenance_id"`

	Links
}

func (p *itemPayload) toItem() *Item {
	return &Item{
		Name:                    p.Name,
		NameAr:                  p.NameAr,
		IsPublic:                p.IsPublic,
		Description:             p.Description,
		DescriptionAr:           p.DescriptionAr,
		Inscription:             p.Inscription,
		TranslatedInscription:   p.TranslatedInscription,
		TranslatedInscriptionAr: p.TranslatedInscriptionAr,
		CurrentLocation:         p.CurrentLocation,
		Dimensions:              p.Dimensions,
		Interpretations:         p.Interpretations,
		BibliographicReferences: p.BibliographicReferences,
		DisplayDateOverride:     p.DisplayDateOverride,
		EarliestCreation:        p.EarliestCreation,
		LatestCreation:          p.LatestCreation,
		CultureOther:            p.CultureOther,
		FindspotOther:           p.FindspotOther,
		ProvenanceOther:         p.ProvenanceOther,
		InscriptionStyleID:      p.InscriptionStyleID,
		FindspotID:              p.FindspotID,
		ProvenanceID:            p.ProvenanceID,
	}
}

func (handler *Handler) create(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	created, err := handler.service.Create(r.Context(), payload.toItem(), payload.Links)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, detailViewOf(created))
}

func (handler *Handler) update(w http.ResponseWriter, r *http.Request) {
	var payload itemPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	it := payload.toItem()
	it.ID = request.Param(r, "id")

	updated, err := handler.service.Update(r.Context(), it, payload.Links)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, detailViewOf(updated))
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), request.Param(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
