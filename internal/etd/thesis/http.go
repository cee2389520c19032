// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etheca/etheca/internal/platform/middleware"
	requestutil "github.com/etheca/etheca/internal/platform/request"
	"github.com/etheca/etheca/internal/platform/respond"
	"github.com/etheca/etheca/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireUser)

		userRoute.Get("/me", handler.getOwn)
		userRoute.Post("/me/document", handler.uploadDocument)
		userRoute.Get("/me/document", handler.downloadOwnDocument)
		userRoute.Patch("/me", handler.updateMetadata)
		userRoute.Post("/me/submit", handler.submit)
	})

	// Staff review surface
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireStaff)

		staffRoute.Get("/{id}", handler.getThesis)
		staffRoute.Get("/{id}/document", handler.downloadDocument)
		staffRoute.Put("/{id}/format-checklist", handler.updateFormatChecklist)
		staffRoute.Post("/{id}/accept", handler.accept)
		staffRoute.Post("/{id}/reject", handler.reject)
		staffRoute.Post("/{id}/open-for-reupload", handler.openForReupload)
		staffRoute.Post("/{id}/reopen-for-ingest", handler.reopenForIngest)
	})
}

func (handler *Handler) getOwn(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	overview, err := handler.service.GetOwnOverview(request.Context(), netid)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, overview)
}

func (handler *Handler) uploadDocument(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, MaxDocumentSize)
	file, header, err := request.FormFile("document")
	if err != nil {
		respond.Error(writer, request, validate.ErrInvalidUpload)
		return
	}
	defer file.Close()

	t, err := handler.service.UploadDocument(request.Context(), netid, header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) downloadOwnDocument(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.GetOwnThesis(request.Context(), netid)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.serveDocument(writer, request, t)
}

func (handler *Handler) updateMetadata(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MetadataInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.UpdateMetadata(request.Context(), netid, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.Submit(request.Context(), netid)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) getThesis(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.GetThesis(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) downloadDocument(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.GetThesis(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.serveDocument(writer, request, t)
}

func (handler *Handler) serveDocument(writer http.ResponseWriter, request *http.Request, t *Thesis) {
	document, name, err := handler.service.OpenDocument(request.Context(), t)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer document.Close()

	writer.Header().Set("Content-Type", "application/pdf")
	writer.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = io.Copy(writer, document)
}

func (handler *Handler) updateFormatChecklist(writer http.ResponseWriter, request *http.Request) {
	var input FormatChecklistInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.UpdateFormatChecklist(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) accept(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.Accept(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) reject(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.Reject(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) openForReupload(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.OpenForReupload(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) reopenForIngest(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.ReopenForIngest(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}
