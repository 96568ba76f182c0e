package service

import (
	"context"

	"github.com/google/uuid"

	"jobboard-be/internal/dto"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/repository/specification"
	"jobboard-be/internal/repository/unitofwork"
)

type ICompanyService interface {
	GetAll(ctx context.Context) ([]dto.CompanyResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error)
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCompanyService(uowFactory unitofwork.RepositoryFactory) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
	}
}

func (c *companyService) GetAll(ctx context.Context) ([]dto.CompanyResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	companies, err := uow.CompanyRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, apperror.Internal("failed to list companies", err)
	}

	return dto.NewCompanyResponses(companies), nil
}

func (c *companyService) Show(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal("failed to load company", err)
	}
	if company == nil {
		return nil, apperror.NotFound("company not found")
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}
