// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
	"github.com/digital-mary/catalog/pkg/convert"
)

// multipartMemoryLimit is how much of a multipart body is held in memory
// before spilling to temp files.
const multipartMemoryLimit = 8 << 20

// Handler exposes the image attachment endpoints. All routes are
// curator-only: public visitors see images inside item payloads and fetch
// the files from the static media mount.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts the curator endpoints. The item-scoped routes share
// the /items/{id} subtree with the item handler, so the param name must
// stay in sync.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/items/{id}/images", handler.listImages)
	router.Post("/items/{id}/images", handler.upload)
	router.Put("/images/{id}", handler.updateImage)
	router.Put("/images/{id}/file", handler.replaceFile)
	router.Delete("/images/{id}", handler.deleteImage)

	router.Get("/items/{id}/remote-images", handler.listRemoteImages)
	router.Post("/items/{id}/remote-images", handler.createRemoteImage)
	router.Put("/remote-images/{id}", handler.updateRemoteImage)
	router.Delete("/remote-images/{id}", handler.deleteRemoteImage)
}

func optionalFormValue(r *http.Request, field string) *string {
	value := r.FormValue(field)
	if value == "" {
		return nil
	}
	return &value
}

func (handler *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	images, err := handler.service.ListImages(r.Context(), request.Param(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, images)
}

func (handler *Handler) upload(w http.ResponseWriter, r *http.Request) {
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

	input := UploadInput{
		Name:        r.FormValue("name"),
		IsPublic:    convert.ToBool(r.FormValue("is_public")),
		Description: optionalFormValue(r, "description"),
		License:     optionalFormValue(r, "license"),
		SortOrder:   convert.ToIntD(r.FormValue("sort_order"), 0),
		File:        file,
	}

	image, err := handler.service.Upload(r.Context(), request.Param(r, "id"), input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, image)
}

func (handler *Handler) updateImage(w http.ResponseWriter, r *http.Request) {
	var input MetaInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	image, err := handler.service.UpdateImage(r.Context(), request.Param(r, "id"), input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, image)
}

func (handler *Handler) replaceFile(w http.ResponseWriter, r *http.Request) {
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

	image, err := handler.service.ReplaceFile(r.Context(), request.Param(r, "id"), file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, image)
}

func (handler *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.DeleteImage(r.Context(), request.Param(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

func (handler *Handler) listRemoteImages(w http.ResponseWriter, r *http.Request) {
	remotes, err := handler.service.ListRemoteImages(r.Context(), request.Param(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, remotes)
}

func (handler *Handler) createRemoteImage(w http.ResponseWriter, r *http.Request) {
	var input RemoteInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	remote, err := handler.service.CreateRemoteImage(r.Context(), request.Param(r, "id"), input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, remote)
}

func (handler *Handler) updateRemoteImage(w http.ResponseWriter, r *http.Request) {
	var input RemoteInput
	if err := request.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, err)
		return
	}

	remote, err := handler.service.UpdateRemoteImage(r.Context(), request.Param(r, "id"), input)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.OK(w, remote)
}

func (handler *Handler) deleteRemoteImage(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.DeleteRemoteImage(r.Context(), request.Param(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
