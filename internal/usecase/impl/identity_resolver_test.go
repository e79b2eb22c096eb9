package impl

import (
	"context"
	"testing"

	"admission/internal/domain/entity"
	"admission/internal/domain/repository"
	mockRepo "admission/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveDuplicate(t *testing.T) {
	reg := entity.Registration{Email: "a@b.com", Username: "jo_1"}

	tests := []struct {
		name    string
		found   *entity.Account
		findErr error
		want    entity.DuplicateField
		wantErr bool
	}{
		{name: "no match", findErr: repository.ErrAccountNotFound, want: entity.DuplicateNone},
		{name: "email match", found: &entity.Account{Email: "a@b.com", Username: "x"}, want: entity.DuplicateEmail},
		{name: "username match", found: &entity.Account{Email: "x@b.com", Username: "jo_1"}, want: entity.DuplicateUsername},
		{name: "both on one record", found: &entity.Account{Email: "a@b.com", Username: "jo_1"}, want: entity.DuplicateEmail},
		{name: "storage failure", findErr: errors.New("boom"), want: entity.DuplicateNone, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockAccountRepository(t)
			repo.EXPECT().FindByEmailOrUsername(mock.Anything, "a@b.com", "jo_1").Return(tt.found, tt.findErr)

			got, err := resolveDuplicate(context.Background(), repo, reg)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
