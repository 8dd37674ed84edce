package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
		wantErr  bool
	}{
		{name: "ULID string", input: `"01HZX3Q7P5R8"`, expected: "01HZX3Q7P5R8"},
		{name: "Integer", input: `42`, expected: "42"},
		{name: "Null", input: `null`, expected: ""},
		{name: "Object", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestID_MarshalsAsString(t *testing.T) {
	data, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ID: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(data))
	assert.False(t, ID("7").IsZero())
	assert.True(t, ID("").IsZero())
}
