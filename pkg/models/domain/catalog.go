package domain

type Category struct {
	ID   int64
	Name string
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    Category
}

// NewProduct is a registration request; CategoryID must resolve to an existing category.
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	CategoryID  int64
}

type Page struct {
	Offset int
	Limit  int
}

func (p Page) Validate() error {
	if p.Offset < 0 {
		return Invalid("offset must not be negative, got %d", p.Offset)
	}
	if p.Limit < 0 {
		return Invalid("limit must not be negative, got %d", p.Limit)
	}
	return nil
}
