// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/middleware"
	requestutil "github.com/etheca/etheca/internal/platform/request"
	"github.com/etheca/etheca/internal/platform/respond"
	"github.com/etheca/etheca/pkg/pagination"
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

		userRoute.Post("/", handler.register)
		userRoute.Get("/me", handler.getOwn)
		userRoute.Get("/me/checklist", handler.getOwnChecklist)
		userRoute.Patch("/me", handler.updateOwn)
		userRoute.Post("/me/committee", handler.addOwnCommitteeMember)
		userRoute.Delete("/me/committee/{memberID}", handler.removeOwnCommitteeMember)
	})

	// Staff review surface
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireStaff)

		staffRoute.Get("/", handler.listCandidates)
		staffRoute.Get("/{id}", handler.getCandidate)
		staffRoute.Patch("/{id}", handler.updateCandidate)
		staffRoute.Post("/{id}/checklist", handler.markChecklist)
	})
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Register(request.Context(), netid, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) getOwn(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.ownCandidate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) getOwnChecklist(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.ownCandidate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c.Checklist.Items(c.Degree.DegreeType))
}

func (handler *Handler) updateOwn(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.ownCandidate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCandidate(request.Context(), c.ID, input, false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) addOwnCommitteeMember(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.ownCandidate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CommitteeMemberInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.AddCommitteeMember(request.Context(), c.ID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, updated)
}

func (handler *Handler) removeOwnCommitteeMember(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.ownCandidate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveCommitteeMember(request.Context(), c.ID, requestutil.ID(request, "memberID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listCandidates(writer http.ResponseWriter, request *http.Request) {
	statusFilter := request.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = StatusFilterAll
	}
	sortBy := request.URL.Query().Get("sort")

	candidates, meta, err := handler.service.ListCandidates(request.Context(), statusFilter, sortBy, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, candidates, meta)
}

func (handler *Handler) getCandidate(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetCandidate(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) updateCandidate(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCandidate(request.Context(), requestutil.ID(request, "id"), input, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

type markChecklistInput struct {
	Fields []string `json:"fields"`
}

func (handler *Handler) markChecklist(writer http.ResponseWriter, request *http.Request) {
	var input markChecklistInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.MarkChecklistItems(request.Context(), requestutil.ID(request, "id"), input.Fields)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

// ownCandidate resolves the caller's candidacy from their netid.
func (handler *Handler) ownCandidate(request *http.Request) (*Candidate, error) {
	netid, err := requestutil.RequiredNetID(request)
	if err != nil {
		return nil, err
	}

	c, err := handler.service.GetCandidateByNetID(request.Context(), netid)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFound("Candidacy")
	}
	return c, err
}
