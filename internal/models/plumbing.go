package models

// PlumbingConfig describes the physical orientation of a shower's plumbing.
// It drives which variant image is shown and whether it gets mirrored.
type PlumbingConfig string

const (
	PlumbingLeft  PlumbingConfig = "LEFT"
	PlumbingRight PlumbingConfig = "RIGHT"
	PlumbingBoth  PlumbingConfig = "BOTH"
)

func (p PlumbingConfig) Valid() bool {
	switch p {
	case PlumbingLeft, PlumbingRight, PlumbingBoth:
		return true
	}
	return false
}

// SelectVariantForPlumbing picks the variant to display for the given
// plumbing side. Side-specific variants win over BOTH; when nothing
// matches, the first variant by display order is used as a fallback so
// the configurator never renders an empty slot.
func SelectVariantForPlumbing(variants []ProductVariant, side PlumbingConfig) *ProductVariant {
	if len(variants) == 0 {
		return nil
	}

	var fallback *ProductVariant
	var both *ProductVariant
	for i := range variants {
		v := &variants[i]
		if fallback == nil || v.DisplayOrder < fallback.DisplayOrder {
			fallback = v
		}
		if v.PlumbingConfig == side {
			return v
		}
		if v.PlumbingConfig == PlumbingBoth && both == nil {
			both = v
		}
	}

	if both != nil {
		return both
	}
	return fallback
}
