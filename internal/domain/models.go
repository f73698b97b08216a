package domain

type Category struct {
	ID   int64  `json:"categoryId"`   // assigned by storage
	Name string `json:"categoryName"` // unique across categories
}
