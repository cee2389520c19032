// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	degrees     []*Degree
	departments []*Department
	languages   []*Language
}

func (r *fakeRepository) ListDegrees(context.Context) ([]*Degree, error)         { return r.degrees, nil }
func (r *fakeRepository) GetDegree(context.Context, string) (*Degree, error)     { return nil, nil }
func (r *fakeRepository) CreateDegree(context.Context, *Degree) error            { return nil }
func (r *fakeRepository) ListDepartments(context.Context) ([]*Department, error) { return r.departments, nil }
func (r *fakeRepository) GetDepartment(context.Context, string) (*Department, error) {
	return nil, nil
}
func (r *fakeRepository) CreateDepartment(context.Context, *Department) error  { return nil }
func (r *fakeRepository) ListLanguages(context.Context) ([]*Language, error)   { return r.languages, nil }
func (r *fakeRepository) GetLanguageByName(context.Context, string) (*Language, error) {
	return nil, nil
}

func newTestRouter(repo *fakeRepository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(NewService(repo, logger))

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestListLanguages(t *testing.T) {
	repo := &fakeRepository{languages: []*Language{
		{ID: "l1", Code: "eng", Name: "English"},
		{ID: "l2", Code: "fre", Name: "French"},
	}}
	router := newTestRouter(repo)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/languages", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []*Language `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "English", envelope.Data[0].Name)
	assert.Equal(t, "fre", envelope.Data[1].Code)
}

func TestListDegrees(t *testing.T) {
	repo := &fakeRepository{degrees: []*Degree{{ID: "d1", Abbreviation: "Ph.D."}}}
	router := newTestRouter(repo)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/degrees", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Ph.D.")
}
