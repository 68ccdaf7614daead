package catalog_test

import (
	"testing"

	"business-platform-backend/internal/catalog"
	"business-platform-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesForPrintingPress(t *testing.T) {
	cat := catalog.Default()

	// Printing press has a fixed list regardless of shop type.
	templates := cat.TemplatesFor(models.BusinessTypePrintingPress, "")
	assert.Len(t, templates, 9)

	withShopType := cat.TemplatesFor(models.BusinessTypePrintingPress, "supermarket")
	assert.Equal(t, templates, withShopType)

	names := templateNames(templates)
	assert.Contains(t, names, "Paper")
	assert.Contains(t, names, "Ink & Toner")
	assert.Contains(t, names, "Machine Spare Parts")
}

func TestTemplatesForPharmacy(t *testing.T) {
	cat := catalog.Default()

	templates := cat.TemplatesFor(models.BusinessTypePharmacy, "")
	assert.Len(t, templates, 7)

	names := templateNames(templates)
	assert.Contains(t, names, "Prescription Drugs")
	assert.Contains(t, names, "Medical Devices")
}

func TestTemplatesForShopWithKnownSubtype(t *testing.T) {
	cat := catalog.Default()

	templates := cat.TemplatesFor(models.BusinessTypeShop, "bookstore")
	assert.Len(t, templates, 6)

	names := templateNames(templates)
	assert.Contains(t, names, "Fiction")
	assert.Contains(t, names, "Textbooks")
}

func TestTemplatesForShopFallback(t *testing.T) {
	cat := catalog.Default()

	fallback := []string{"General Merchandise", "Miscellaneous"}

	// Missing subtype falls back to the generic list.
	assert.Equal(t, fallback, templateNames(cat.TemplatesFor(models.BusinessTypeShop, "")))

	// So does an unknown subtype key.
	assert.Equal(t, fallback, templateNames(cat.TemplatesFor(models.BusinessTypeShop, "spaceport")))
}

func TestTemplatesForUnknownBusinessType(t *testing.T) {
	cat := catalog.Default()

	templates := cat.TemplatesFor(models.BusinessType("food_truck"), "")
	assert.Equal(t, []string{"General Merchandise", "Miscellaneous"}, templateNames(templates))
}

func TestDefaultCategoriesForShopType(t *testing.T) {
	cat := catalog.Default()

	assert.Len(t, cat.DefaultCategoriesForShopType("supermarket"), 7)
	assert.Len(t, cat.DefaultCategoriesForShopType("hardware"), 6)
	assert.Len(t, cat.DefaultCategoriesForShopType("bookstore"), 6)
	assert.Nil(t, cat.DefaultCategoriesForShopType("unknown"))
}

func TestShopTypeConfig(t *testing.T) {
	cat := catalog.Default()

	cfg, ok := cat.ShopTypeConfig("pharmacy")
	assert.False(t, ok)
	assert.Nil(t, cfg)

	cfg, ok = cat.ShopTypeConfig("electronics")
	require.True(t, ok)
	assert.Equal(t, "Electronics Shop", cfg.Name)
	assert.NotEmpty(t, cfg.DefaultCategories)
}

func TestShopTypeOptionsStableOrder(t *testing.T) {
	cat := catalog.Default()

	first := cat.ShopTypeOptions()
	require.NotEmpty(t, first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, cat.ShopTypeOptions())
	}

	keys := make(map[string]bool, len(first))
	for _, opt := range first {
		assert.NotEmpty(t, opt.Key)
		assert.NotEmpty(t, opt.Name)
		assert.False(t, keys[opt.Key], "duplicate key %s", opt.Key)
		keys[opt.Key] = true
	}
}

func TestTemplatesAreCopies(t *testing.T) {
	cat := catalog.Default()

	templates := cat.TemplatesFor(models.BusinessTypePrintingPress, "")
	templates[0].Name = "mutated"

	again := cat.TemplatesFor(models.BusinessTypePrintingPress, "")
	assert.NotEqual(t, "mutated", again[0].Name)
}

func templateNames(templates []catalog.CategoryTemplate) []string {
	names := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		names = append(names, tmpl.Name)
	}
	return names
}
