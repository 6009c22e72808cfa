package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeed(t *testing.T) *Service {
	t.Helper()
	svc, err := LoadSeed()
	require.NoError(t, err)
	return svc
}

func TestLoadSeed(t *testing.T) {
	svc := mustSeed(t)
	products := svc.All()
	require.Len(t, products, 6)

	// Catalog order is preserved.
	assert.Equal(t, "nonstick-signature-set", products[0].ID)
	assert.Equal(t, "wooden-utensil-set", products[5].ID)

	// Spot-check decoded fields.
	set := products[0]
	assert.Equal(t, int64(44900), int64(set.Price))
	require.NotNil(t, set.OriginalPrice)
	assert.Equal(t, int64(59900), int64(*set.OriginalPrice))
	assert.Equal(t, CategoryCookwareSets, set.Category)
	assert.True(t, set.IsFeatured)
	assert.Len(t, set.Specifications, 5)

	pan := products[1]
	require.Len(t, pan.Variants, 2)
	assert.Equal(t, "pro-grade-12inch", pan.Variants[1].ID)
	assert.Equal(t, int64(9900), int64(pan.Variants[1].Price))
	assert.Equal(t, "12 inch", pan.Variants[1].Attributes["size"])
}

func TestGet(t *testing.T) {
	svc := mustSeed(t)

	p, ok := svc.Get("cast-iron-dutch-oven")
	require.True(t, ok)
	assert.Equal(t, "Cast Iron Dutch Oven", p.Name)

	// The match is exact and case-sensitive.
	_, ok = svc.Get("Cast-Iron-Dutch-Oven")
	assert.False(t, ok)
	_, ok = svc.Get("missing")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	svc := mustSeed(t)

	pans := svc.ByCategory(CategoryFryingPans)
	require.Len(t, pans, 2)
	assert.Equal(t, "pro-grade-nonstick-pan", pans[0].ID)
	assert.Equal(t, "copper-core-frying-pan", pans[1].ID)

	assert.Empty(t, svc.ByCategory(Category("nonexistent")))
}

func TestFeatured(t *testing.T) {
	svc := mustSeed(t)
	featured := svc.Featured()
	require.Len(t, featured, 3)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestReviews(t *testing.T) {
	svc := mustSeed(t)

	reviews := svc.Reviews("nonstick-signature-set")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Sarah M.", reviews[0].UserName)
	assert.Equal(t, 5, reviews[0].Rating)

	assert.Empty(t, svc.Reviews("wooden-utensil-set"))
	assert.Empty(t, svc.Reviews("missing"))
}

func TestSearch(t *testing.T) {
	svc := mustSeed(t)

	// "dutch" matches the Dutch oven by name, tag and description.
	results := svc.Search("dutch")
	require.Len(t, results, 1)
	assert.Equal(t, "cast-iron-dutch-oven", results[0].ID)

	// Case-insensitive.
	assert.Equal(t, results, svc.Search("DUTCH"))

	// Tag match: "pfoa-free" only appears as a tag.
	results = svc.Search("pfoa")
	require.Len(t, results, 1)
	assert.Equal(t, "pro-grade-nonstick-pan", results[0].ID)

	// Description match.
	results = svc.Search("bamboo")
	require.Len(t, results, 1)
	assert.Equal(t, "wooden-utensil-set", results[0].ID)

	// No match is an empty result, not an error.
	assert.Empty(t, svc.Search("pressure cooker"))

	// An empty or blank query matches nothing.
	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("   "))
}

func TestRecommended(t *testing.T) {
	svc := mustSeed(t)

	recs := svc.Recommended("pro-grade-nonstick-pan")
	require.Len(t, recs, 1)
	assert.Equal(t, "copper-core-frying-pan", recs[0].ID)
	for _, p := range recs {
		assert.NotEqual(t, "pro-grade-nonstick-pan", p.ID)
		assert.Equal(t, CategoryFryingPans, p.Category)
	}

	// A product with no same-category siblings yields nothing.
	assert.Empty(t, svc.Recommended("wooden-utensil-set"))

	// An unknown id yields an empty slice, not an error.
	assert.Empty(t, svc.Recommended("missing"))
}

func TestRecommendedCapsAtFour(t *testing.T) {
	products := make([]Product, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		products = append(products, Product{ID: id, Category: CategoryAccessories})
	}
	svc := New(Data{Products: products})

	recs := svc.Recommended("a")
	require.Len(t, recs, 4)
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "e", recs[3].ID)
}

func TestSort(t *testing.T) {
	svc := mustSeed(t)
	products := svc.All()

	byName := Sort(products, SortByName)
	assert.Equal(t, "cast-iron-dutch-oven", byName[0].ID)

	byPriceLow := Sort(products, SortByPriceLow)
	assert.Equal(t, "wooden-utensil-set", byPriceLow[0].ID)
	assert.Equal(t, "nonstick-signature-set", byPriceLow[len(byPriceLow)-1].ID)

	byPriceHigh := Sort(products, SortByPriceHigh)
	assert.Equal(t, "nonstick-signature-set", byPriceHigh[0].ID)

	byRating := Sort(products, SortByRating)
	assert.Equal(t, "cast-iron-dutch-oven", byRating[0].ID)

	// The input slice is not mutated.
	assert.Equal(t, "nonstick-signature-set", products[0].ID)
}

func TestFilter(t *testing.T) {
	svc := mustSeed(t)
	all := svc.All()

	// Price range keeps order and bounds inclusive of values inside.
	mid := Filter(all, FilterOptions{MinPrice: 6000, MaxPrice: 20000})
	ids := make([]string, 0, len(mid))
	for _, p := range mid {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"pro-grade-nonstick-pan", "pro-nonstick-sauce-pan", "cast-iron-dutch-oven", "copper-core-frying-pan"}, ids)

	// Material matching is case-insensitive.
	castIron := Filter(all, FilterOptions{Materials: []string{"cast iron"}})
	require.Len(t, castIron, 1)
	assert.Equal(t, "cast-iron-dutch-oven", castIron[0].ID)

	// Multiple categories.
	pansAndSets := Filter(all, FilterOptions{Categories: []Category{CategoryFryingPans, CategoryCookwareSets}})
	assert.Len(t, pansAndSets, 3)

	// Unmatched brand filters everything out.
	assert.Empty(t, Filter(all, FilterOptions{Brands: []string{"Acme"}}))

	// Zero options filter nothing.
	assert.Len(t, Filter(all, FilterOptions{}), len(all))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Dutch Ovens", CategoryDutchOvens.Label())
	assert.Equal(t, "Products", Category("bogus").Label())
	assert.True(t, CategorySaucePans.Valid())
	assert.False(t, Category("bogus").Valid())
}

func TestLoadBytesRejectsBadCatalog(t *testing.T) {
	_, err := loadBytes([]byte("products:\n  - id: x\n    category: not-a-category\n"))
	assert.Error(t, err)

	_, err = loadBytes([]byte("products:\n  - name: no id\n"))
	assert.Error(t, err)

	_, err = loadBytes([]byte("{{not yaml"))
	assert.Error(t, err)
}
