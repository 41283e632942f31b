package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	gRepo "frontdesk/shared/repository"
)

type Room interface {
	GetAll(ctx context.Context, params dto.GetRoomsRequest) ([]model.Room, error)
	GetByID(ctx context.Context, roomNumber string) (model.Room, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	Update(ctx context.Context, roomNumber string, req dto.UpdateRoomRequest) (model.Room, error)
	Delete(ctx context.Context, roomNumber string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(client hotelapi.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.CollectionPath, client, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, params dto.GetRoomsRequest) ([]model.Room, error) {
	return r.Repository.GetAll(ctx, params.ToQuery())
}

func (r *repositoryImpl) GetByID(ctx context.Context, roomNumber string) (model.Room, error) {
	return r.Get(ctx, roomNumber)
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error) {
	return r.Repository.Create(ctx, req)
}

func (r *repositoryImpl) Update(ctx context.Context, roomNumber string, req dto.UpdateRoomRequest) (model.Room, error) {
	return r.Repository.Update(ctx, roomNumber, req)
}
