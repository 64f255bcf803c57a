package category

type Category struct {
	Id           int    `json:"id"`
	CategoryName string `json:"categoryName" validate:"required"`
}
