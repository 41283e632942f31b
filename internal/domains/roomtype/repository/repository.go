package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/roomtype/model"
	gRepo "frontdesk/shared/repository"
)

type RoomType interface {
	GetAll(ctx context.Context) ([]model.RoomType, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
}

func New(client hotelapi.Client, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.CollectionPath, client, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.RoomType, error) {
	return r.Repository.GetAll(ctx, nil)
}
