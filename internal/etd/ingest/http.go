// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/middleware"
	requestutil "github.com/etheca/etheca/internal/platform/request"
	"github.com/etheca/etheca/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireStaff)

		staffRoute.Get("/eligible", handler.listEligible)
		staffRoute.Post("/run", handler.runBatch)
		staffRoute.Post("/{thesisID}", handler.ingestOne)
	})
}

func (handler *Handler) listEligible(writer http.ResponseWriter, request *http.Request) {
	asOf := time.Now()
	if raw := request.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("Invalid as_of date",
				apperr.FieldError{Field: "as_of", Message: "Expected YYYY-MM-DD"}))
			return
		}
		// Inclusive of the whole day.
		asOf = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}

	eligible, err := handler.service.FindEligible(request.Context(), asOf)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, eligible)
}

func (handler *Handler) runBatch(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.RunBatch(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) ingestOne(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.Ingest(request.Context(), requestutil.ID(request, "thesisID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}
