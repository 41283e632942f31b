package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/url"

	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Guest interface {
	GetAll(ctx context.Context) ([]model.Guest, error)
	Search(ctx context.Context, query string) ([]model.Guest, error)
	GetByID(ctx context.Context, id string) (model.Guest, error)
	GetByNIC(ctx context.Context, nic string) (model.Guest, error)
	Create(ctx context.Context, req dto.UpsertGuestRequest) (model.Guest, error)
	Update(ctx context.Context, id string, req dto.UpsertGuestRequest) (model.Guest, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(client hotelapi.Client, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.CollectionPath, client, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Guest, error) {
	return r.Repository.GetAll(ctx, nil)
}

func (r *repositoryImpl) Search(ctx context.Context, query string) ([]model.Guest, error) {
	return r.Repository.GetAll(ctx, url.Values{constant.RequestParamQuery: {query}})
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Guest, error) {
	return r.Get(ctx, id)
}

func (r *repositoryImpl) GetByNIC(ctx context.Context, nic string) (model.Guest, error) {
	return r.GetPath(ctx, r.PathFor(model.NICCardSegment, nic))
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.UpsertGuestRequest) (model.Guest, error) {
	return r.Repository.Create(ctx, req)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, req dto.UpsertGuestRequest) (model.Guest, error) {
	return r.Repository.Update(ctx, id, req)
}
