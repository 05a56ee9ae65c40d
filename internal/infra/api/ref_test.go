//go:build unit

package api_test

import (
	"encoding/json"
	"testing"

	"stay-client/internal/infra/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unitStub struct {
	Numero string `json:"numero"`
}

func TestRef(t *testing.T) {
	t.Run("bare id", func(t *testing.T) {
		var ref api.Ref[unitStub]
		require.NoError(t, json.Unmarshal([]byte(`"u1"`), &ref))

		assert.Equal(t, "u1", ref.ID())
		_, ok := ref.Inline()
		assert.False(t, ok)
	})

	t.Run("embedded document", func(t *testing.T) {
		var ref api.Ref[unitStub]
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","numero":"204"}`), &ref))

		assert.Equal(t, "u1", ref.ID())
		unit, ok := ref.Inline()
		require.True(t, ok)
		assert.Equal(t, "204", unit.Numero)
	})

	t.Run("null", func(t *testing.T) {
		var ref api.Ref[unitStub]
		require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
		assert.True(t, ref.IsZero())
	})

	t.Run("wrong shape", func(t *testing.T) {
		var ref api.Ref[unitStub]
		assert.Error(t, json.Unmarshal([]byte(`42`), &ref))
	})

	t.Run("marshals back to the shape it holds", func(t *testing.T) {
		b, err := json.Marshal(api.RefID[unitStub]("u1"))
		require.NoError(t, err)
		assert.JSONEq(t, `"u1"`, string(b))

		b, err = json.Marshal(api.RefInline("u1", unitStub{Numero: "204"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"numero":"204"}`, string(b))
	})
}
