// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

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
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireUser)

		userRoute.Get("/", handler.searchKeywords)
		userRoute.Get("/autocomplete", handler.autocomplete)
		userRoute.Post("/", handler.createKeyword)
	})
}

func (handler *Handler) searchKeywords(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("q")
	order := request.URL.Query().Get("order")

	keywords, err := handler.service.SearchKeywords(request.Context(), term, order)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, keywords)
}

func (handler *Handler) autocomplete(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("term")

	groups, err := handler.service.Autocomplete(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

type createKeywordInput struct {
	Text string `json:"text"`
}

func (handler *Handler) createKeyword(writer http.ResponseWriter, request *http.Request) {
	var input createKeywordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	kw, err := handler.service.CreateKeyword(request.Context(), input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, kw)
}
