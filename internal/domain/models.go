package domain

import "time"

// User represents a registered shopper
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	Theme         string `json:"theme"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// Category represents a sports category in the catalog
type Category struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Type        CategoryType `json:"type"`
}

// Product represents a catalog product. Products are owned by the
// catalog source; the session store holds a read-mostly cached copy.
type Product struct {
	ID            string      `json:"id"`
	CategoryID    string      `json:"categoryId"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice,omitempty"`
	ImageURL      string      `json:"imageUrl"`
	Rating        float64     `json:"rating"`
	ReviewCount   int         `json:"reviewCount"`
	Stock         int         `json:"stock"`
	Type          ProductType `json:"type"`
}

// CartItem holds one product and its quantity. The cart never holds
// two items for the same product id; a repeated add merges quantities.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// WishlistItem holds one saved product, at most one per product id.
type WishlistItem struct {
	ID      string  `json:"id"`
	Product Product `json:"product"`
}

// DeliveryAddress is the structured shipping destination of an order.
type DeliveryAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// Order represents a placed order. Immutable after creation except for
// status advancement, which is owned by the fulfilment side.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is a value snapshot of a product, quantity and price taken
// at order-placement time. Later catalog price changes never affect it.
type OrderItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Review represents a product review. A user may submit several
// reviews for the same product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
