package repository_test

import (
	"context"
	"net/url"
	"testing"

	apiMocks "frontdesk/infras/hotelapi/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuestRepository_GetByNIC(t *testing.T) {
	client := apiMocks.NewMockClient(gomock.NewController(t))
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().
		Get(gomock.Any(), "/guests/nic-card/987654321V", url.Values(nil), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*model.Guest) = model.Guest{ID: "U1", NICCardNum: "987654321V"}
			return nil
		})

	got, err := repo.GetByNIC(context.Background(), "987654321V")

	require.NoError(t, err)
	assert.Equal(t, "U1", got.ID)
}

func TestGuestRepository_Search(t *testing.T) {
	client := apiMocks.NewMockClient(gomock.NewController(t))
	repo := repository.New(client, mocks.NewOtel())

	client.EXPECT().
		Get(gomock.Any(), "/guests", url.Values{"query": {"jo"}}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*out.(*[]model.Guest) = []model.Guest{{ID: "U1", Name: "Jo"}}
			return nil
		})

	got, err := repo.Search(context.Background(), "jo")

	require.NoError(t, err)
	assert.Equal(t, []model.Guest{{ID: "U1", Name: "Jo"}}, got)
}
