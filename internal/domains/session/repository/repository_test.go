package repository_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	apiMocks "frontdesk/infras/hotelapi/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/session/model"
	"frontdesk/internal/domains/session/model/dto"
	"frontdesk/internal/domains/session/repository"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionRepository_EndPatchesSession(t *testing.T) {
	client := apiMocks.NewMockClient(gomock.NewController(t))
	repo := repository.New(client, mocks.NewOtel())

	checkOut := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	req := dto.EndSessionRequest{ActualCheckOut: checkOut}

	client.EXPECT().
		Patch(gomock.Any(), "/sessions/9", req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, out any) error {
			*out.(*model.Session) = model.Session{ID: 9, ActualCheckOut: &checkOut}
			return nil
		})

	got, err := repo.End(context.Background(), 9, req)

	require.NoError(t, err)
	assert.Equal(t, 9, got.ID)
	assert.Equal(t, &checkOut, got.ActualCheckOut)
}

func TestSessionRepository_DeleteKeepsFailureCode(t *testing.T) {
	client := apiMocks.NewMockClient(gomock.NewController(t))
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().Delete(gomock.Any(), "/sessions/3", nil).Return(failure.NotFound("Session not found"))

	err := repo.Delete(context.Background(), 3)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
