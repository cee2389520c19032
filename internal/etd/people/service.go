// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package people

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

func (service *Service) GetPerson(context context.Context, id string) (*Person, error) {
	return service.repo.GetPerson(context, id)
}

func (service *Service) GetPersonByNetID(context context.Context, netid string) (*Person, error) {
	return service.repo.GetPersonByNetID(context, netid)
}

func (service *Service) CreatePerson(context context.Context, person *Person) error {
	if err := validatePerson(person); err != nil {
		return err
	}

	person.normalizeIdentifiers()
	person.ID = uuidv7.New()
	if err := service.repo.CreatePerson(context, person); err != nil {
		return err
	}

	service.logger.Info("person_created", slog.String("person_id", person.ID))
	return nil
}

func (service *Service) UpdatePerson(context context.Context, id string, person *Person) error {
	person.ID = id
	if err := validatePerson(person); err != nil {
		return err
	}

	person.normalizeIdentifiers()
	if err := service.repo.UpdatePerson(context, person); err != nil {
		return err
	}

	service.logger.Info("person_updated", slog.String("person_id", person.ID))
	return nil
}

func validatePerson(person *Person) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldLastName, person.LastName).MaxLen(FieldLastName, person.LastName, 190).
		Required(FieldFirstName, person.FirstName).MaxLen(FieldFirstName, person.FirstName, 190).
		MaxLen(FieldMiddle, person.Middle, 100)

	if person.Email != nil && *person.Email != "" {
		validator.Email(FieldEmail, *person.Email)
	}
	if person.NetID != nil {
		validator.MaxLen(FieldNetID, *person.NetID, 100)
	}
	if person.Orcid != nil {
		validator.MaxLen(FieldOrcid, *person.Orcid, 100)
	}
	if person.BannerID != nil {
		validator.MaxLen(FieldBannerID, *person.BannerID, 100)
	}

	return validator.Err()
}
