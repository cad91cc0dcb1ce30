package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tudu/internal/domains/auth/model/dto"
	userModel "tudu/internal/domains/user/model"
	"tudu/shared/validator"
)

func TestSignUpRequest_ToUserModel(t *testing.T) {
	req := dto.SignUpRequest{Username: "alice", Password: "s3cret"}

	user := req.ToUserModel("$2a$10$digest")

	assert.Zero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$10$digest", user.HashedPassword)
}

func TestMeResponse_FromModel(t *testing.T) {
	var response dto.MeResponse
	response.FromModel(userModel.User{ID: 3, Username: "alice", HashedPassword: "digest"})

	assert.Equal(t, dto.MeResponse{Username: "alice"}, response)
}

func TestSignUpRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.SignUpRequest
		expectError bool
	}{
		{name: "valid", req: dto.SignUpRequest{Username: "alice", Password: "s3cret"}},
		{name: "missing username", req: dto.SignUpRequest{Password: "s3cret"}, expectError: true},
		{name: "blank username", req: dto.SignUpRequest{Username: "  ", Password: "s3cret"}, expectError: true},
		{name: "missing password", req: dto.SignUpRequest{Username: "alice"}, expectError: true},
		{
			name:        "password longer than bcrypt accepts",
			req:         dto.SignUpRequest{Username: "alice", Password: strings.Repeat("p", 73)},
			expectError: true,
		},
		{
			name:        "multibyte password over 72 bytes",
			req:         dto.SignUpRequest{Username: "alice", Password: strings.Repeat("é", 40)},
			expectError: true,
		},
		{
			name: "multibyte password within 72 bytes",
			req:  dto.SignUpRequest{Username: "alice", Password: strings.Repeat("é", 36)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
