package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.Style
		wantError string
	}{
		{name: "crew neck", input: "Crew Neck", want: domain.StyleCrewNeck},
		{name: "v-neck", input: "V-Neck", want: domain.StyleVNeck},
		{name: "pyramid", input: "Pyramid", want: domain.StylePyramid},
		{name: "wrong case", input: "crew neck", wantError: "style[crew neck] is not valid"},
		{name: "empty", input: "", wantError: "style[] is not valid"},
		{name: "unknown", input: "Turtleneck", wantError: "style[Turtleneck] is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseStyle(tt.input)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	for _, size := range domain.Sizes() {
		got, err := domain.ParseSize(string(size))
		require.NoError(t, err)
		assert.Equal(t, size, got)
	}

	for _, bad := range []string{"S", "XS", "m", "XXL", ""} {
		_, err := domain.ParseSize(bad)
		require.Error(t, err, "size %q", bad)
	}
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, domain.Product{Inventory: 1}.InStock())
	assert.False(t, domain.Product{Inventory: 0}.InStock())
	assert.False(t, domain.Product{}.InStock())
}
