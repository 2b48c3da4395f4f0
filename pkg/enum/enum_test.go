package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("string values", func(t *testing.T) {
		type direction string

		north := New(direction("n"), "north")
		require.Equal(t, direction("n"), north)

		v, err := ToEnum[direction]("north")
		require.NoError(t, err)
		require.Equal(t, north, v)

		_, err = ToEnum[direction]("n")
		require.Error(t, err)

		require.Equal(t, "north", ToString(north))
		require.Equal(t, "", ToString(direction("up")))
	})

	t.Run("int values", func(t *testing.T) {
		type status int

		ok := New(status(0), "OK")
		deleted := New(status(101), "AREA_DELETED")

		v, err := ToEnum[status]("AREA_DELETED")
		require.NoError(t, err)
		require.Equal(t, deleted, v)

		require.Equal(t, "OK", ToString(ok))
		require.Equal(t, "", ToString(status(7)))
	})

	t.Run("unregistered type", func(t *testing.T) {
		type unknown int

		_, err := ToEnum[unknown]("x")
		require.Error(t, err)
		require.Equal(t, "", ToString(unknown(1)))
	})
}
