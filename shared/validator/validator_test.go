package validator_test

import (
	"net/http"
	"salon/shared/failure"
	"salon/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	StartAt int64 `json:"startAt"`
	EndAt   int64 `json:"endAt"   validate:"gtfield=StartAt"`
}

type listing struct {
	ID       string   `json:"id"       validate:"required"`
	Capacity int      `json:"capacity" validate:"min=1"`
	Status   string   `json:"status"   validate:"oneof=active cancelled"`
	Windows  []window `json:"windows"  validate:"dive"`
}

type entry struct {
	ID string `validate:"required"`
}

type catalog struct {
	Entries []entry `validate:"unique=ID,dive"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    listing
		wantErr string
	}{
		{
			name: "valid struct",
			data: listing{ID: "sl_1", Capacity: 2, Status: "active", Windows: []window{{StartAt: 1, EndAt: 2}}},
		},
		{
			name:    "missing id",
			data:    listing{Capacity: 2, Status: "active"},
			wantErr: "listing.ID is required",
		},
		{
			name:    "capacity below one",
			data:    listing{ID: "sl_1", Capacity: 0, Status: "active"},
			wantErr: "listing.Capacity must be greater than or equal to 1",
		},
		{
			name:    "unknown status",
			data:    listing{ID: "sl_1", Capacity: 1, Status: "paused"},
			wantErr: "listing.Status must be one of active cancelled",
		},
		{
			name:    "inverted window",
			data:    listing{ID: "sl_1", Capacity: 1, Status: "active", Windows: []window{{StartAt: 5, EndAt: 5}}},
			wantErr: "listing.Windows[0].EndAt must be after StartAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_Unique(t *testing.T) {
	data := catalog{Entries: []entry{{ID: "a"}, {ID: "a"}}}

	err := validator.ValidateStruct(&data)

	require.Error(t, err)
	assert.Equal(t, "catalog.Entries must not repeat ID", err.Error())
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var data listing
		err := validator.Validate(strings.NewReader(`{"id":"sl_1","capacity":3,"status":"active"}`), &data)

		require.NoError(t, err)
		assert.Equal(t, 3, data.Capacity)
	})

	t.Run("malformed json", func(t *testing.T) {
		var data listing
		err := validator.Validate(strings.NewReader(`{"id":`), &data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode request body")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=all draft confirmed cancelled"))
	assert.Error(t, validator.ValidateVar("pending", "oneof=all draft confirmed cancelled"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
}
