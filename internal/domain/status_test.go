package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "ready", "delivered", "cancelled"} {
		st, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), st)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, s := range []string{"banana", "", "PENDING", "done"} {
		_, err := ParseStatus(s)
		require.Error(t, err, s)

		var ve ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "status", ve.Field)
	}
}
