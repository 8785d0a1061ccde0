package domain

// Product is a menu item. ID is zero until the store assigns one.
type Product struct {
	ID          int64   `db:"id" json:"id,omitempty"`
	Name        string  `db:"name" json:"name" validate:"required"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price" validate:"required"`
	ImagePath   *string `db:"image_path" json:"image_path,omitempty"` // emoji or asset path
}

// OrderItem snapshots the product as it was when the order was taken.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Product   Product `json:"product" validate:"-"`
}

// Order is immutable once stored. Subtotal, Tax and Total come from the
// caller and are kept verbatim.
type Order struct {
	ID              int64       `json:"id,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`
	Buyer           string      `json:"buyer" validate:"required"`
	Products        []OrderItem `json:"products" validate:"dive"`
	PaymentMethod   string      `json:"payment_method" validate:"required"`
	DeliveryService string      `json:"delivery_service" validate:"required"`
	CouponCode      *string     `json:"coupon_code,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
}

type Coupon struct {
	ID                 int64   `db:"id" json:"id,omitempty"`
	Code               string  `db:"code" json:"code" validate:"required"`
	DiscountPercentage float64 `db:"discount_percentage" json:"discount_percentage"`
	ExpirationDate     string  `db:"expiration_date" json:"expiration_date" validate:"required"` // stored as given
}
