package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint32
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "4294967295", want: 4294967295},
		{raw: "4294967296", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTaskID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidTaskID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
