package clientdirectory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoster_NullableFields(t *testing.T) {
	var owners []Owner
	require.NoError(t, json.Unmarshal([]byte(
		`[{"id":"c1","name":"Anna","email":null,"pets":[{"id":"p1","name":"Rex","species":"dog","breed":null}]}]`,
	), &owners))

	roster := ToRoster(owners)

	require.Len(t, roster, 1)
	assert.Empty(t, roster[0].Email)
	assert.Empty(t, roster[0].Phone)
	assert.Empty(t, roster[0].Pets[0].Breed)
	assert.Equal(t, "dog", roster[0].Pets[0].Species)
}
