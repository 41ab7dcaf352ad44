// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package challenge

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
)

// Handler exposes the inquiry endpoints: one public submission route and
// the curator moderation queue.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public submission endpoint.
func (handler *Handler) Routes(router chi.Router) {
	router.Post("/items/{id}/challenges", handler.submit)
}

// AdminRoutes mounts the curator moderation endpoints. There is no create
// or edit here: challenges only enter through the public form.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/challenges", func(r chi.Router) {
		r.Get("/", handler.list)
		r.Post("/archive", handler.archive)
		r.Post("/unarchive", handler.unarchive)
		r.Delete("/{id}", handler.delete)
	})
}

func (handler *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var input SubmitInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := handler.service.Submit(r.Context(), request.Param(r, "id"), input, clientIP(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, c)
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request) {
	var archived *bool
	switch r.URL.Query().Get("archived") {
	case "true":
		value := true
		archived = &value
	case "false":
		value := false
		archived = &value
	}

	challenges, err := handler.service.List(r.Context(), archived)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, challenges)
}

// batchPayload carries the IDs for bulk archive operations.
type batchPayload struct {
	IDs []string `json:"ids"`
}

func (handler *Handler) archive(w http.ResponseWriter, r *http.Request) {
	var payload batchPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.Archive(r.Context(), payload.IDs); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

func (handler *Handler) unarchive(w http.ResponseWriter, r *http.Request) {
	var payload batchPayload
	if err := request.DecodeJSON(r, &payload); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := handler.service.Unarchive(r.Context(), payload.IDs); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

func (handler *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), request.Param(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

// clientIP extracts the remote address for captcha verification.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
