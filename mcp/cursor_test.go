package mcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	testCases := []struct {
		name      string
		cursor    string
		expect    int
		expectErr bool
	}{
		{name: "empty", cursor: "", expect: 0},
		{name: "issued", cursor: encodeCursor(42), expect: 42},
		{name: "not base64", cursor: "%%%", expectErr: true},
		{name: "foreign", cursor: "next-page-cursor", expectErr: true},
		{name: "negative", cursor: encodeCursor(-1), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offset, err := decodeCursor(tc.cursor)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCursor))
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, offset)
		})
	}
}
