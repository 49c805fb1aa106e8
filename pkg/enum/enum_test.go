package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("registered values round-trip", func(t *testing.T) {
		type Status string

		active := New(Status("active"))
		require.Equal(t, Status("active"), active)

		v, err := ToEnum[Status]("active")
		require.NoError(t, err)
		require.Equal(t, active, v)

		_, err = ToEnum[Status]("archived")
		require.Error(t, err)
	})

	t.Run("lookup of an unregistered type fails", func(t *testing.T) {
		type Unregistered string

		_, err := ToEnum[Unregistered]("anything")
		require.Error(t, err)
	})

	t.Run("same name in different enums does not collide", func(t *testing.T) {
		type First string
		type Second string

		New(First("open"))
		New(Second("open"))

		v1, err := ToEnum[First]("open")
		require.NoError(t, err)
		require.Equal(t, First("open"), v1)

		v2, err := ToEnum[Second]("open")
		require.NoError(t, err)
		require.Equal(t, Second("open"), v2)
	})
}
