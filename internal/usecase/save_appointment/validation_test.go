package save_appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    domain.AppointmentStatus
		wantErr bool
	}{
		{name: "empty defaults to confirmed", status: "", want: domain.StatusConfirmed},
		{name: "confirmed", status: "confirmed", want: domain.StatusConfirmed},
		{name: "pending", status: "pending", want: domain.StatusPending},
		{name: "cancelled", status: "cancelled", want: domain.StatusCancelled},
		{name: "unknown rejected", status: "no-show", wantErr: true},
		{name: "case sensitive", status: "Confirmed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveStatus(tt.status)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
