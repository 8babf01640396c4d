//go:build unit

package product_test

import (
	"testing"

	"linenhire/internal/domain/product"
	"linenhire/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	rate := decimal.RequireFromString("12.50")

	t.Run("priced product", func(t *testing.T) {
		p, err := product.NewProduct("Signature White Tablecloth", "Classic crisp white tablecloth.", &rate, nil, nil, true, nil)
		require.NoError(t, err)
		assert.Equal(t, "Signature White Tablecloth", p.Title())
		assert.True(t, p.IsActive())
		assert.False(t, p.IsFreeConsultation())
	})

	t.Run("fixed quantity pack", func(t *testing.T) {
		p, err := product.NewProduct("Premium Napkin Set (50pk)", "", &rate, ptr.To(int32(50)), nil, true, nil)
		require.NoError(t, err)
		require.NotNil(t, p.FixedQuantity())
		assert.Equal(t, int32(50), *p.FixedQuantity())
	})

	t.Run("neither price nor fixed quantity is a free consultation", func(t *testing.T) {
		p, err := product.NewProduct("Site Survey", "We visit and measure up.", nil, nil, nil, true, nil)
		require.NoError(t, err)
		assert.True(t, p.IsFreeConsultation())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			build func() (*product.Product, error)
			errIs error
		}{
			{
				name: "empty title",
				build: func() (*product.Product, error) {
					return product.NewProduct("  ", "", nil, nil, nil, true, nil)
				},
				errIs: product.ErrEmptyTitle,
			},
			{
				name: "negative price",
				build: func() (*product.Product, error) {
					neg := decimal.RequireFromString("-1")
					return product.NewProduct("Towels", "", &neg, nil, nil, true, nil)
				},
				errIs: product.ErrNegativePrice,
			},
			{
				name: "zero fixed quantity",
				build: func() (*product.Product, error) {
					return product.NewProduct("Towels", "", nil, ptr.To(int32(0)), nil, true, nil)
				},
				errIs: product.ErrInvalidFixedQty,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
