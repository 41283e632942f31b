package service_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	roomTypeMocks "frontdesk/internal/domains/roomtype/mocks"
	"frontdesk/internal/domains/roomtype/model"
	"frontdesk/internal/domains/roomtype/service"
	"frontdesk/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomTypeService_GetAllFetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	memory := cache.NewMemoryCache(mocks.NewOtel())

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, memory, mocks.NewOtel())

	roomTypes := []model.RoomType{{ID: 2, Name: "Double Bed Room", Pax: 2, PriceWithBreakfast: 50000, PriceWithoutBreakfast: 40000}}

	mockRepo.EXPECT().GetAll(gomock.Any()).Return(roomTypes, nil).Times(1)

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roomTypes, got)

	var cached []model.RoomType
	require.NoError(t, memory.Get(context.Background(), "roomtype:gets", &cached))
	assert.Equal(t, roomTypes, cached)

	got, err = svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roomTypes, got)
}

func TestRoomTypeService_GetAllError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cache.NewMemoryCache(mocks.NewOtel()), mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.GetAll(context.Background())

	assert.Error(t, err)
}

func TestRoomType_Price(t *testing.T) {
	roomType := model.RoomType{PriceWithBreakfast: 50000, PriceWithoutBreakfast: 40000}

	assert.Equal(t, float64(50000), roomType.Price(true))
	assert.Equal(t, float64(40000), roomType.Price(false))

	found, ok := model.FindByID([]model.RoomType{{ID: 1}, {ID: 2, Name: "Double Bed Room"}}, 2)
	assert.True(t, ok)
	assert.Equal(t, "Double Bed Room", found.Name)

	_, ok = model.FindByID(nil, 3)
	assert.False(t, ok)
}
