package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpactTier(t *testing.T) {
	t.Run("fixed tier constants", func(t *testing.T) {
		assert.Equal(t, 5.0, TierHigh.CO2())
		assert.Equal(t, 2.5, TierMedium.CO2())
		assert.Equal(t, 0.8, TierLow.CO2())

		assert.Equal(t, "High Impact", TierHigh.Label())
		assert.Equal(t, "Medium Impact", TierMedium.Label())
		assert.Equal(t, "Low Impact", TierLow.Label())

		assert.Equal(t, 1, TierHigh.Points())
		assert.Equal(t, 2, TierMedium.Points())
		assert.Equal(t, 3, TierLow.Points())
	})

	t.Run("unknown tiers default to Medium behavior", func(t *testing.T) {
		unknown := ImpactTier("Purple")
		assert.False(t, unknown.Valid())
		assert.Equal(t, 2.5, unknown.CO2())
		assert.Equal(t, "Medium Impact", unknown.Label())
		assert.Equal(t, 2, unknown.Points())
	})

	t.Run("only the three tiers are valid", func(t *testing.T) {
		assert.True(t, TierLow.Valid())
		assert.True(t, TierMedium.Valid())
		assert.True(t, TierHigh.Valid())
		assert.False(t, ImpactTier("").Valid())
	})
}

func TestDisposalAction(t *testing.T) {
	assert.Equal(t, "♻", ActionRecycle.Icon())
	assert.Equal(t, "🗑", ActionTrash.Icon())
	assert.Equal(t, "ℹ", ActionCheckLocal.Icon())
	assert.Equal(t, "ℹ", DisposalAction("Compost").Icon())

	assert.True(t, ActionRecycle.Valid())
	assert.True(t, ActionTrash.Valid())
	assert.True(t, ActionCheckLocal.Valid())
	assert.False(t, DisposalAction("Compost").Valid())
}

func TestProductRecordPackagingText(t *testing.T) {
	t.Run("joins tags and raw packaging", func(t *testing.T) {
		p := ProductRecord{
			PackagingTags: []string{"en:plastic-bottle", "en:film"},
			PackagingRaw:  "Plastic bottle",
		}
		assert.Equal(t, "en:plastic-bottle en:film Plastic bottle", p.PackagingText())
	})

	t.Run("empty fields produce empty text", func(t *testing.T) {
		assert.Equal(t, "", ProductRecord{}.PackagingText())
	})

	t.Run("raw packaging alone survives", func(t *testing.T) {
		p := ProductRecord{PackagingRaw: "glass bottle"}
		assert.Equal(t, "glass bottle", p.PackagingText())
	})
}
