package domain

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid.
// Statuses only ever advance, never regress.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusProcessing
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered:
		return false // Terminal state
	default:
		return false
	}
}

// ProductType tags a product with its merchandise kind
type ProductType string

const (
	ProductTypeShoes     ProductType = "shoes"
	ProductTypeTShirt    ProductType = "tshirt"
	ProductTypeEquipment ProductType = "equipment"
	ProductTypeWorkout   ProductType = "workout"
)

// IsValid checks if the product type is valid
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeShoes, ProductTypeTShirt, ProductTypeEquipment, ProductTypeWorkout:
		return true
	default:
		return false
	}
}

// CategoryType tags a category with its sport setting
type CategoryType string

const (
	CategoryTypeIndoor   CategoryType = "indoor"
	CategoryTypeOutdoor  CategoryType = "outdoor"
	CategoryTypeOlympic  CategoryType = "olympic"
	CategoryTypeNational CategoryType = "national"
)

// IsValid checks if the category type is valid
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIndoor, CategoryTypeOutdoor, CategoryTypeOlympic, CategoryTypeNational:
		return true
	default:
		return false
	}
}
