package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  CreateUserRequest{Name: "renato", Email: "renato@example.com"},
		},
		{
			name:    "invalid email",
			req:     CreateUserRequest{Name: "renato", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     CreateUserRequest{Name: "renato"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     CreateUserRequest{Email: "renato@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
