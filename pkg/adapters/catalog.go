package adapters

import (
	"github.com/de-tools/commerce-atlas/pkg/models/api"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/models/store"
)

func MapStoreCategoryToDomain(c store.Category) domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name}
}

func MapStoreProductToDomain(p store.ProductRecord) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category: domain.Category{
			ID:   p.CategoryID,
			Name: p.CategoryName,
		},
	}
}

func MapNewProductToStore(p domain.NewProduct, category domain.Category) store.ProductRecord {
	return store.ProductRecord{
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
}

func MapCategoryDomainToApi(c domain.Category) api.Category {
	return api.Category{ID: c.ID, Name: c.Name}
}

func MapProductDomainToApi(p domain.Product) api.Product {
	return api.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    MapCategoryDomainToApi(p.Category),
	}
}
