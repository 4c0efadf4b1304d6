package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string
	Grid [2][2]byte
}

func TestDecodePayload(t *testing.T) {
	raw := map[string]any{
		"Name": "frame",
		"Grid": []any{[]any{1.0, 0.0}, []any{0.0, 2.0}},
	}

	got, err := DecodePayload[payload](raw)

	require.NoError(t, err)
	assert.Equal(t, payload{Name: "frame", Grid: [2][2]byte{{1, 0}, {0, 2}}}, got)
}

func TestDecodePayloadTypeMismatch(t *testing.T) {
	_, err := DecodePayload[payload](map[string]any{"Name": 5})
	assert.Error(t, err)
}
