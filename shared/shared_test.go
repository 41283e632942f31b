package shared_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"frontdesk/shared"
	"frontdesk/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: shared.Ptr(true)},
		{name: "zero", input: "0", expected: shared.Ptr(false)},
		{name: "invalid returns nil", input: "yes", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToInt(""))
	assert.Nil(t, shared.ConvertStringToInt("two"))
	assert.Equal(t, shared.Ptr(2), shared.ConvertStringToInt(" 2 "))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:204", shared.BuildCacheKey("room:get", "204"))
	assert.Equal(t, "roomtype:gets", shared.BuildCacheKey("roomtype:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	query := url.Values{}
	query.Set("roomTypeId", "2")
	query.Set("floor", "2")

	assert.Equal(t, "room:gets:floor=2&roomTypeId=2", shared.BuildCacheKeyWithQuery("room:gets", query))
	assert.Equal(t, "room:gets", shared.BuildCacheKeyWithQuery("room:gets", url.Values{}))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:")

	mockCache.EXPECT().Clear(gomock.Any(), "guest:").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "guest:")
}
