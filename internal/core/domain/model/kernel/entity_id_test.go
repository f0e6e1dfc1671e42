package kernel_test

import (
	"strings"
	"testing"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityID(t *testing.T) {
	t.Run("prefixed_id_starts_with_prefix", func(t *testing.T) {
		id := kernel.NewEntityID("customer")

		assert.True(t, strings.HasPrefix(id.String(), "customer_"))
		require.NoError(t, id.Validate())
	})

	t.Run("unprefixed_id_has_no_leading_separator", func(t *testing.T) {
		id := kernel.NewEntityID("")

		assert.False(t, strings.HasPrefix(id.String(), "_"))
		require.NoError(t, id.Validate())
	})

	t.Run("generated_ids_are_unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			id := kernel.NewEntityID("order")
			assert.False(t, seen[id.String()], "duplicate id generated: %s", id)
			seen[id.String()] = true
		}
	})

	t.Run("same_prefix_ids_are_time_ordered", func(t *testing.T) {
		first := kernel.NewEntityID("order")
		time.Sleep(2 * time.Millisecond)
		second := kernel.NewEntityID("order")

		assert.Less(t, first.String(), second.String())
	})
}

func TestEntityIDFromString(t *testing.T) {
	t.Run("accepts_any_non_empty_string", func(t *testing.T) {
		id, err := kernel.EntityIDFromString("f1")

		require.NoError(t, err)
		assert.Equal(t, "f1", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		_, err := kernel.EntityIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEntityID_IsEqual(t *testing.T) {
	a, err := kernel.EntityIDFromString("customer_1")
	require.NoError(t, err)
	b, err := kernel.EntityIDFromString("customer_1")
	require.NoError(t, err)
	c := kernel.NewEntityID("customer")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestEntityID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.EntityID

		require.Error(t, id.Validate())
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}
