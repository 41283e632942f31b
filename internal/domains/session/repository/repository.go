package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strconv"

	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/session/model"
	"frontdesk/internal/domains/session/model/dto"
	gRepo "frontdesk/shared/repository"
)

type Session interface {
	GetAll(ctx context.Context) ([]model.Session, error)
	GetByID(ctx context.Context, id int) (model.Session, error)
	Create(ctx context.Context, req dto.CreateSessionRequest) (model.Session, error)
	End(ctx context.Context, id int, req dto.EndSessionRequest) (model.Session, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Session]
}

func New(client hotelapi.Client, otel otel.Otel) Session {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.EntityName, model.CollectionPath, client, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Session, error) {
	return r.Repository.GetAll(ctx, nil)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id int) (model.Session, error) {
	return r.Get(ctx, strconv.Itoa(id))
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateSessionRequest) (model.Session, error) {
	return r.Repository.Create(ctx, req)
}

// End is a PATCH that sets the check-out time on the backend.
func (r *repositoryImpl) End(ctx context.Context, id int, req dto.EndSessionRequest) (model.Session, error) {
	return r.Patch(ctx, strconv.Itoa(id), req)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) error {
	return r.Repository.Delete(ctx, strconv.Itoa(id))
}
