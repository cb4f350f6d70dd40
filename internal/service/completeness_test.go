package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckComplete(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMissing string
		wantMsg     string
	}{
		{name: "all defined", text: "FOO=1\nBAR="},
		{name: "empty map", text: ""},
		{
			name:        "single unset key",
			text:        "FOO=1\nSECRET",
			wantMissing: "SECRET",
			wantMsg:     "value for 'SECRET' should be defined",
		},
		{
			name:        "first unset in order is reported",
			text:        "A=1\nB\nC\nD=4",
			wantMissing: "B",
			wantMsg:     "value for 'B' should be defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseLines(tt.text)

			got, err := CheckComplete(m)

			if tt.wantMissing == "" {
				require.NoError(t, err)
				assert.Same(t, m, got)
				return
			}

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMissingValue)
			assert.EqualError(t, err, tt.wantMsg)

			var missing *MissingValueError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantMissing, missing.Key)
		})
	}
}
