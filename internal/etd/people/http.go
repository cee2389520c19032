// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package people

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	// Staff only: person records carry bannerids and private email addresses.
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireStaff)

		staffRoute.Get("/{id}", handler.getPerson)
		staffRoute.Post("/", handler.createPerson)
		staffRoute.Patch("/{id}", handler.updatePerson)
	})
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	person, err := handler.service.GetPerson(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

func (handler *Handler) createPerson(writer http.ResponseWriter, request *http.Request) {
	var input Person
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePerson(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePerson(writer http.ResponseWriter, request *http.Request) {
	var input Person
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePerson(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}
