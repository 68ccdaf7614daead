// Package catalog holds the static business-type reference data used to seed
// default inventory categories for newly provisioned tenants.
package catalog

import "business-platform-backend/internal/database/models"

// CategoryTemplate describes one default inventory category.
type CategoryTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ShopTypeConfig describes a retail shop subtype and its default categories.
type ShopTypeConfig struct {
	Key               string             `json:"key"`
	Name              string             `json:"name"`
	DefaultCategories []CategoryTemplate `json:"default_categories"`
}

// ShopTypeOption is the reduced view exposed to signup forms.
type ShopTypeOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Catalog is an immutable lookup of business-type and shop-type defaults.
// Construct with Default; inject wherever templates are resolved.
type Catalog struct {
	shopTypes     map[string]ShopTypeConfig
	shopTypeOrder []string
	printingPress []CategoryTemplate
	pharmacy      []CategoryTemplate
	fallback      []CategoryTemplate
}

// DefaultCategoriesForShopType returns the default category templates for a
// shop subtype. Unknown keys yield an empty list, never an error.
func (c *Catalog) DefaultCategoriesForShopType(key string) []CategoryTemplate {
	cfg, ok := c.shopTypes[key]
	if !ok {
		return nil
	}
	return copyTemplates(cfg.DefaultCategories)
}

// ShopTypeConfig returns the configuration for a shop subtype key.
func (c *Catalog) ShopTypeConfig(key string) (*ShopTypeConfig, bool) {
	cfg, ok := c.shopTypes[key]
	if !ok {
		return nil, false
	}
	cfg.DefaultCategories = copyTemplates(cfg.DefaultCategories)
	return &cfg, true
}

// ShopTypeOptions lists all shop subtypes in a stable order.
func (c *Catalog) ShopTypeOptions() []ShopTypeOption {
	opts := make([]ShopTypeOption, 0, len(c.shopTypeOrder))
	for _, key := range c.shopTypeOrder {
		opts = append(opts, ShopTypeOption{Key: key, Name: c.shopTypes[key].Name})
	}
	return opts
}

// TemplatesFor resolves the default category list for a tenant classification.
// Precedence: printing press fixed list; shop with a known subtype uses the
// shop-type table; pharmacy fixed list; anything else gets the generic
// fallback. A shop subtype key that is unknown also falls back.
func (c *Catalog) TemplatesFor(businessType models.BusinessType, shopType string) []CategoryTemplate {
	switch businessType {
	case models.BusinessTypePrintingPress:
		return copyTemplates(c.printingPress)
	case models.BusinessTypeShop:
		if shopType != "" {
			if templates := c.DefaultCategoriesForShopType(shopType); len(templates) > 0 {
				return templates
			}
		}
		return copyTemplates(c.fallback)
	case models.BusinessTypePharmacy:
		return copyTemplates(c.pharmacy)
	default:
		return copyTemplates(c.fallback)
	}
}

func copyTemplates(in []CategoryTemplate) []CategoryTemplate {
	out := make([]CategoryTemplate, len(in))
	copy(out, in)
	return out
}
