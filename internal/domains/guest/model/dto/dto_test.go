package dto_test

import (
	"testing"

	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestUpsertGuestRequest_Validate(t *testing.T) {
	valid := dto.UpsertGuestRequest{
		Name:       "Jo Perera",
		Phone:      "0771234567",
		Email:      "jo@example.com",
		Address:    "12 Galle Road",
		NICCardNum: "991234567V",
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.UpsertGuestRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*dto.UpsertGuestRequest) {}},
		{name: "blank name", mutate: func(r *dto.UpsertGuestRequest) { r.Name = "   " }, wantErr: "name"},
		{name: "bad email", mutate: func(r *dto.UpsertGuestRequest) { r.Email = "not-an-email" }, wantErr: "email"},
		{name: "missing nic", mutate: func(r *dto.UpsertGuestRequest) { r.NICCardNum = "" }, wantErr: "nicCardNum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			req.Normalize()

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
