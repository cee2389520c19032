// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

import (
	"context"
	"log/slog"

	"github.com/etheca/etheca/internal/platform/validate"
	"github.com/etheca/etheca/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListDegrees(context context.Context) ([]*Degree, error) {
	return service.repo.ListDegrees(context)
}

func (service *Service) GetDegree(context context.Context, id string) (*Degree, error) {
	return service.repo.GetDegree(context, id)
}

func (service *Service) CreateDegree(context context.Context, degree *Degree) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldAbbreviation, degree.Abbreviation).MaxLen(FieldAbbreviation, degree.Abbreviation, 20).
		Required(FieldName, degree.Name).MaxLen(FieldName, degree.Name, 190).
		OneOf(FieldDegreeType, degree.DegreeType, DegreeTypeDoctorate, DegreeTypeMasters)
	if err := validator.Err(); err != nil {
		return err
	}

	degree.ID = uuidv7.New()
	if err := service.repo.CreateDegree(context, degree); err != nil {
		return err
	}

	service.logger.Info("degree_created", slog.String("abbreviation", degree.Abbreviation))
	return nil
}

func (service *Service) ListDepartments(context context.Context) ([]*Department, error) {
	return service.repo.ListDepartments(context)
}

func (service *Service) GetDepartment(context context.Context, id string) (*Department, error) {
	return service.repo.GetDepartment(context, id)
}

func (service *Service) CreateDepartment(context context.Context, department *Department) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, department.Name).MaxLen(FieldName, department.Name, 190)
	if err := validator.Err(); err != nil {
		return err
	}

	department.ID = uuidv7.New()
	if err := service.repo.CreateDepartment(context, department); err != nil {
		return err
	}

	service.logger.Info("department_created", slog.String("name", department.Name))
	return nil
}

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListLanguages(context)
}

// DefaultLanguage resolves the language applied to uploads that do not
// declare one.
func (service *Service) DefaultLanguage(context context.Context) (*Language, error) {
	return service.repo.GetLanguageByName(context, "English")
}
