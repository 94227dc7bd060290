package store

type Category struct {
	ID   int64
	Name string
}

// ProductRecord is a product row joined with its category.
type ProductRecord struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	CategoryID   int64
	CategoryName string
}
