package disposal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

func TestDetectMaterial(t *testing.T) {
	t.Run("known materials matched as substrings", func(t *testing.T) {
		assert.Equal(t, "plastic bottle", DetectMaterial("500ml PLASTIC BOTTLE with shrink wrap"))
		assert.Equal(t, "glass bottle", DetectMaterial("returnable glass bottle"))
		assert.Equal(t, "greasy cardboard", DetectMaterial("greasy cardboard pizza box"))
	})

	t.Run("unmatched text yields unknown", func(t *testing.T) {
		assert.Equal(t, MaterialUnknown, DetectMaterial("styrofoam tray"))
		assert.Equal(t, MaterialUnknown, DetectMaterial(""))
	})
}

func TestResolve(t *testing.T) {
	t.Run("plastic bottle recycles in San Francisco", func(t *testing.T) {
		decision, err := Resolve("San Francisco", "plastic bottle wrap")
		require.NoError(t, err)

		assert.Equal(t, "plastic bottle", decision.Material)
		assert.Equal(t, models.ActionRecycle, decision.Action)
		assert.Equal(t, "♻", decision.Icon)
		assert.Equal(t, "Plastic Bottle -> Recycle", decision.Detail)
	})

	t.Run("greasy cardboard is trash in Chicago", func(t *testing.T) {
		decision, err := Resolve("Chicago", "greasy cardboard box")
		require.NoError(t, err)

		assert.Equal(t, models.ActionTrash, decision.Action)
		assert.Equal(t, "🗑", decision.Icon)
		assert.Equal(t, "Greasy Cardboard -> Trash", decision.Detail)
	})

	t.Run("unknown material falls back to local guidelines", func(t *testing.T) {
		decision, err := Resolve("Chicago", "styrofoam tray")
		require.NoError(t, err)

		assert.Equal(t, MaterialUnknown, decision.Material)
		assert.Equal(t, models.ActionCheckLocal, decision.Action)
		assert.Equal(t, "ℹ", decision.Icon)
		assert.Equal(t, "Material unclear. Follow local sorting guidelines.", decision.Detail)
	})

	t.Run("unsupported city is a validation error", func(t *testing.T) {
		_, err := Resolve("Nowhere", "plastic bottle")
		assert.ErrorIs(t, err, utils.ErrUnsupportedCity)
	})

	t.Run("empty packaging text resolves without error", func(t *testing.T) {
		decision, err := Resolve("San Francisco", "")
		require.NoError(t, err)
		assert.Equal(t, models.ActionCheckLocal, decision.Action)
	})

	t.Run("both cities currently share identical rules", func(t *testing.T) {
		for _, packaging := range []string{"plastic bottle", "glass bottle", "greasy cardboard"} {
			sf, err := Resolve("San Francisco", packaging)
			require.NoError(t, err)
			chi, err := Resolve("Chicago", packaging)
			require.NoError(t, err)
			assert.Equal(t, sf.Action, chi.Action)
		}
	})
}

func TestSupportedCities(t *testing.T) {
	cities := SupportedCities()
	assert.Equal(t, []string{"San Francisco", "Chicago"}, cities)

	t.Run("returned slice is a copy", func(t *testing.T) {
		cities[0] = "Mutated"
		assert.Equal(t, []string{"San Francisco", "Chicago"}, SupportedCities())
	})

	t.Run("IsSupported matches the table", func(t *testing.T) {
		assert.True(t, IsSupported("San Francisco"))
		assert.True(t, IsSupported("Chicago"))
		assert.False(t, IsSupported("Nowhere"))
		assert.False(t, IsSupported("san francisco"))
	})
}
