package domain

const pizzaEmoji = "🍕"

// SampleCatalog is inserted into an empty products table on first start.
var SampleCatalog = []Product{
	{Name: "Margherita Hardcore", Description: "Classic tomato and mozzarella", Price: 12.99},
	{Name: "Pepperoni Remaster", Description: "Spicy pepperoni with cheese", Price: 14.99},
	{Name: "Hawaiian Remaster", Description: "Ham and pineapple", Price: 13.99},
	{Name: "Supreme Remaster", Description: "All toppings included", Price: 16.99},
	{Name: "BBQ Chicken Remaster", Description: "BBQ sauce with chicken", Price: 15.99},
	{Name: "Veggie Delight Remaster", Description: "Fresh vegetables only", Price: 13.99},
}

// SampleImage is the image reference given to every seeded product.
func SampleImage() *string {
	s := pizzaEmoji
	return &s
}
