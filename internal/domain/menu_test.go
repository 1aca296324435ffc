package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemValidate(t *testing.T) {
	valid := MenuItem{Name: "Coffee", Price: 3.50, Category: "beverages"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		item  MenuItem
		field string
	}{
		{"missing name", MenuItem{Price: 1, Category: "beverages"}, "name"},
		{"long name", MenuItem{Name: strings.Repeat("x", 101), Price: 1, Category: "beverages"}, "name"},
		{"missing category", MenuItem{Name: "Coffee", Price: 1}, "category"},
		{"negative price", MenuItem{Name: "Coffee", Price: -0.01, Category: "beverages"}, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			require.Error(t, err)

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestMenuItemValidate_ZeroPriceAllowed(t *testing.T) {
	item := MenuItem{Name: "Tap Water", Price: 0, Category: "beverages"}
	assert.NoError(t, item.Validate())
}
