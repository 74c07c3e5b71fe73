package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCategory(t *testing.T) {
	list := []Talent{
		{ID: "1", Gender: "Male", Age: 20, HeightCm: 180, Location: "Mumbai"},
		{ID: "2", Gender: "Female", Age: 22, HeightCm: 170, Location: "Delhi"},
		{ID: "3", Gender: "Male", Age: 12, HeightCm: 150, Location: "Pune"},
		{ID: "4", Gender: "Other", Age: 30, HeightCm: 175, Location: "Goa"},
	}

	t.Run("All keeps everyone", func(t *testing.T) {
		assert.Len(t, Filter(list, CategoryAll, false, AdvancedFilters{}), 4)
	})

	t.Run("Male requires gender and adult age", func(t *testing.T) {
		got := Filter(list, CategoryMale, false, AdvancedFilters{})
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("Kids is age only, any gender", func(t *testing.T) {
		got := Filter(list, CategoryKids, false, AdvancedFilters{})
		assert.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("Other gender excluded from Male and Female pills", func(t *testing.T) {
		assert.Empty(t, Filter(list[3:], CategoryMale, false, AdvancedFilters{}))
		assert.Empty(t, Filter(list[3:], CategoryFemale, false, AdvancedFilters{}))
	})
}

func TestFilterAdvancedConjunction(t *testing.T) {
	list := []Talent{
		{ID: "1", Gender: "Male", Age: 20, HeightCm: 180, Location: "Mumbai"},
		{ID: "2", Gender: "Male", Age: 16, HeightCm: 190, Location: "Delhi"},
	}

	// Category Male keeps both; min height 185 keeps only the second.
	got := Filter(list, CategoryMale, true, AdvancedFilters{MinHeightCm: 185})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterAdvancedRules(t *testing.T) {
	list := []Talent{
		{ID: "1", Gender: "Female", Age: 20, HeightCm: 170, Location: "Mumbai, Maharashtra, India"},
		{ID: "2", Gender: "Male", Age: 25, HeightCm: 182, Location: "New Delhi, India"},
		{ID: "3", Gender: "Female", Age: 17, HeightCm: 165, Location: "Location TBA"},
	}

	t.Run("location is case-insensitive substring", func(t *testing.T) {
		got := Filter(list, CategoryAll, true, AdvancedFilters{Location: "mumbai"})
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("age range is inclusive on both bounds", func(t *testing.T) {
		got := Filter(list, CategoryAll, true, AdvancedFilters{MinAge: 17, MaxAge: 20})
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("gender All is a no-op", func(t *testing.T) {
		assert.Len(t, Filter(list, CategoryAll, true, AdvancedFilters{Gender: "All"}), 3)
	})

	t.Run("min height zero is unconstrained", func(t *testing.T) {
		assert.Len(t, Filter(list, CategoryAll, true, AdvancedFilters{MinHeightCm: 0}), 3)
	})

	t.Run("advanced off ignores the advanced set", func(t *testing.T) {
		assert.Len(t, Filter(list, CategoryAll, false, AdvancedFilters{MinHeightCm: 999}), 3)
	})

	t.Run("order is preserved", func(t *testing.T) {
		got := Filter(list, CategoryAll, true, AdvancedFilters{})
		ids := []string{got[0].ID, got[1].ID, got[2].ID}
		assert.Equal(t, []string{"1", "2", "3"}, ids)
	})
}
