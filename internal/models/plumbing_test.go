package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlumbingConfigValid(t *testing.T) {
	assert.True(t, PlumbingLeft.Valid())
	assert.True(t, PlumbingRight.Valid())
	assert.True(t, PlumbingBoth.Valid())
	assert.False(t, PlumbingConfig("").Valid())
	assert.False(t, PlumbingConfig("left").Valid())
	assert.False(t, PlumbingConfig("CENTER").Valid())
}

func TestSelectVariantForPlumbing(t *testing.T) {
	left := ProductVariant{ColorName: "white-left", PlumbingConfig: PlumbingLeft, DisplayOrder: 2}
	right := ProductVariant{ColorName: "white-right", PlumbingConfig: PlumbingRight, DisplayOrder: 3}
	both := ProductVariant{ColorName: "white", PlumbingConfig: PlumbingBoth, DisplayOrder: 1}

	t.Run("side match wins", func(t *testing.T) {
		got := SelectVariantForPlumbing([]ProductVariant{both, left, right}, PlumbingLeft)
		require.NotNil(t, got)
		assert.Equal(t, "white-left", got.ColorName)
	})

	t.Run("falls back to BOTH", func(t *testing.T) {
		got := SelectVariantForPlumbing([]ProductVariant{right, both}, PlumbingLeft)
		require.NotNil(t, got)
		assert.Equal(t, "white", got.ColorName)
	})

	t.Run("falls back to lowest display order", func(t *testing.T) {
		got := SelectVariantForPlumbing([]ProductVariant{right, left}, PlumbingBoth)
		require.NotNil(t, got)
		assert.Equal(t, "white-left", got.ColorName)
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, SelectVariantForPlumbing(nil, PlumbingLeft))
	})
}

func TestSideImageURL(t *testing.T) {
	v := ProductVariant{
		ImageURL:     "neutral.png",
		ImageURLLeft: "left.png",
	}

	t.Run("exact side", func(t *testing.T) {
		url, mirror := v.SideImageURL(PlumbingLeft)
		assert.Equal(t, "left.png", url)
		assert.False(t, mirror)
	})

	t.Run("opposite side needs mirroring", func(t *testing.T) {
		url, mirror := v.SideImageURL(PlumbingRight)
		assert.Equal(t, "left.png", url)
		assert.True(t, mirror)
	})

	t.Run("BOTH uses the neutral image", func(t *testing.T) {
		url, mirror := v.SideImageURL(PlumbingBoth)
		assert.Equal(t, "neutral.png", url)
		assert.False(t, mirror)
	})

	t.Run("no side images at all", func(t *testing.T) {
		plain := ProductVariant{ImageURL: "neutral.png"}
		url, mirror := plain.SideImageURL(PlumbingLeft)
		assert.Equal(t, "neutral.png", url)
		assert.False(t, mirror)
	})
}
