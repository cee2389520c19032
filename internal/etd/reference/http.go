// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

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
	router.Get("/degrees", handler.listDegrees)
	router.Get("/degrees/{id}", handler.getDegree)
	router.Get("/departments", handler.listDepartments)
	router.Get("/departments/{id}", handler.getDepartment)
	router.Get("/languages", handler.listLanguages)

	// Staff only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireStaff)

		staffRoute.Post("/degrees", handler.createDegree)
		staffRoute.Post("/departments", handler.createDepartment)
	})
}

func (handler *Handler) listDegrees(writer http.ResponseWriter, request *http.Request) {
	degrees, err := handler.service.ListDegrees(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, degrees)
}

func (handler *Handler) getDegree(writer http.ResponseWriter, request *http.Request) {
	degree, err := handler.service.GetDegree(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, degree)
}

func (handler *Handler) createDegree(writer http.ResponseWriter, request *http.Request) {
	var input Degree
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDegree(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listDepartments(writer http.ResponseWriter, request *http.Request) {
	departments, err := handler.service.ListDepartments(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, departments)
}

func (handler *Handler) getDepartment(writer http.ResponseWriter, request *http.Request) {
	department, err := handler.service.GetDepartment(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, department)
}

func (handler *Handler) createDepartment(writer http.ResponseWriter, request *http.Request) {
	var input Department
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDepartment(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}
