package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func validRequest() dto.UpsertGuestRequest {
	return dto.UpsertGuestRequest{
		Name:       "Jo Perera",
		Phone:      "0771234567",
		Email:      "jo@example.com",
		Address:    "12 Galle Road",
		NICCardNum: "991234567V",
	}
}

func TestGuestService_Search(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest, c *cacheMocks.MockCache)
		want      []model.Guest
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func(_ *guestMocks.MockGuest, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "guest:search:jo", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]model.Guest) = []model.Guest{{ID: "U1"}}
						return nil
					})
			},
			want: []model.Guest{{ID: "U1"}},
		},
		{
			name: "cache miss loads from backend",
			setupMock: func(repo *guestMocks.MockGuest, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), "guest:search:jo", gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Search(gomock.Any(), "jo").
					Return([]model.Guest{{ID: "U1"}, {ID: "U2"}}, nil)
			},
			want: []model.Guest{{ID: "U1"}, {ID: "U2"}},
		},
		{
			name: "backend error",
			setupMock: func(repo *guestMocks.MockGuest, c *cacheMocks.MockCache) {
				c.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Search(gomock.Any(), "jo").
					Return(nil, failure.BadGateway("Hotel backend is unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			tt.setupMock(repo, c)

			got, err := svc.Search(context.Background(), "jo")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuestService_Create(t *testing.T) {
	t.Run("invalidates guest caches", func(t *testing.T) {
		svc, repo, c := newService(t)

		repo.EXPECT().
			Create(gomock.Any(), validRequest()).
			Return(model.Guest{ID: "U1", Name: "Jo Perera"}, nil)

		c.EXPECT().Clear(gomock.Any(), "guest:").Return(nil)

		got, err := svc.Create(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "U1", got.ID)
	})

	t.Run("validation error never reaches backend", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := validRequest()
		req.Email = "nope"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("backend error keeps caches", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, failure.Conflict("NIC already registered"))

		_, err := svc.Create(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestGuestService_UpdateAndDelete(t *testing.T) {
	svc, repo, c := newService(t)

	repo.EXPECT().
		Update(gomock.Any(), "U1", validRequest()).
		Return(model.Guest{ID: "U1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "U1").Return(nil)

	c.EXPECT().Clear(gomock.Any(), "guest:").Return(nil).Times(2)

	_, err := svc.Update(context.Background(), "U1", validRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), "U1"))
}

func TestGuestService_GetByNIC(t *testing.T) {
	svc, repo, c := newService(t)

	c.EXPECT().
		Get(gomock.Any(), "guest:nic:991234567V", gomock.Any()).
		Return(errors.New("cache miss"))

	repo.EXPECT().
		GetByNIC(gomock.Any(), "991234567V").
		Return(model.Guest{ID: "U1", NICCardNum: "991234567V"}, nil)

	got, err := svc.GetByNIC(context.Background(), "991234567V")

	assert.NoError(t, err)
	assert.Equal(t, "U1", got.ID)
}
