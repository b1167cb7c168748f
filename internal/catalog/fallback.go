package catalog

import "github.com/sportshub/storefront/internal/domain"

// FallbackCategories returns the built-in category list. It doubles
// as the seed data for an empty database.
func FallbackCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Kabaddi", Slug: "kabaddi", Description: "Traditional Indian sport equipment", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeNational},
		{ID: "2", Name: "Cricket", Slug: "cricket", Description: "Cricket bats, balls, and protective gear", ImageURL: "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeOutdoor},
		{ID: "3", Name: "Football", Slug: "football", Description: "Football gear and equipment", ImageURL: "https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeOutdoor},
		{ID: "4", Name: "Basketball", Slug: "basketball", Description: "Basketball essentials", ImageURL: "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeOutdoor},
		{ID: "5", Name: "Hockey", Slug: "hockey", Description: "Hockey sticks and protective gear", ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeOutdoor},
		{ID: "6", Name: "Tennis", Slug: "tennis", Description: "Tennis rackets and accessories", ImageURL: "https://images.unsplash.com/photo-1544717684-6e7b95b4d7e5?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeOutdoor},
		{ID: "7", Name: "Badminton", Slug: "badminton", Description: "Badminton rackets and shuttlecocks", ImageURL: "https://images.unsplash.com/photo-1626224583764-f87db24ac4ea?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeIndoor},
		{ID: "8", Name: "Volleyball", Slug: "volleyball", Description: "Volleyball equipment", ImageURL: "https://images.unsplash.com/photo-1612872087720-bb876e2e67d1?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeIndoor},
		{ID: "9", Name: "Chess", Slug: "chess", Description: "Chess boards and accessories", ImageURL: "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=500&h=500&fit=crop&crop=center", Type: domain.CategoryTypeIndoor},
	}
}

// FallbackProducts returns the built-in product catalog used while
// the remote source is unavailable or returns nothing. It also seeds
// an empty database.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{ID: "p-101", CategoryID: "2", Name: "English Willow Cricket Bat", Description: "Full-size grade 1 english willow bat with toe guard", Price: 189.99, OriginalPrice: 229.99, ImageURL: "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?w=500", Rating: 4.8, ReviewCount: 132, Stock: 24, Type: domain.ProductTypeEquipment},
		{ID: "p-102", CategoryID: "2", Name: "Leather Cricket Ball Pack", Description: "Hand-stitched four-piece leather balls, pack of three", Price: 34.5, ImageURL: "https://images.unsplash.com/photo-1593766788306-28561086694e?w=500", Rating: 4.5, ReviewCount: 87, Stock: 60, Type: domain.ProductTypeEquipment},
		{ID: "p-103", CategoryID: "2", Name: "Batting Gloves", Description: "Lightweight batting gloves with sweat-wicking lining", Price: 27.0, ImageURL: "https://images.unsplash.com/photo-1531415074968-036ba1b575da?w=500", Rating: 4.2, ReviewCount: 41, Stock: 35, Type: domain.ProductTypeEquipment},
		{ID: "p-201", CategoryID: "3", Name: "Match Football Size 5", Description: "FIFA quality thermally bonded match ball", Price: 49.99, OriginalPrice: 59.99, ImageURL: "https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?w=500", Rating: 4.6, ReviewCount: 210, Stock: 80, Type: domain.ProductTypeEquipment},
		{ID: "p-202", CategoryID: "3", Name: "Firm Ground Football Boots", Description: "Moulded stud boots for firm natural ground", Price: 94.0, ImageURL: "https://images.unsplash.com/photo-1511886929837-354d827aae26?w=500", Rating: 4.4, ReviewCount: 156, Stock: 42, Type: domain.ProductTypeShoes},
		{ID: "p-301", CategoryID: "4", Name: "Indoor Basketball", Description: "Composite leather indoor game ball, size 7", Price: 39.95, ImageURL: "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=500", Rating: 4.3, ReviewCount: 98, Stock: 55, Type: domain.ProductTypeEquipment},
		{ID: "p-302", CategoryID: "4", Name: "High-Top Court Shoes", Description: "Cushioned high-top shoes with herringbone outsole", Price: 119.0, OriginalPrice: 139.0, ImageURL: "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=500", Rating: 4.7, ReviewCount: 73, Stock: 18, Type: domain.ProductTypeShoes},
		{ID: "p-401", CategoryID: "6", Name: "Graphite Tennis Racket", Description: "Head-light graphite frame strung at 52 lbs", Price: 139.5, ImageURL: "https://images.unsplash.com/photo-1544717684-6e7b95b4d7e5?w=500", Rating: 4.6, ReviewCount: 64, Stock: 22, Type: domain.ProductTypeEquipment},
		{ID: "p-402", CategoryID: "6", Name: "Pressurized Tennis Balls", Description: "Tournament-grade pressurized balls, tube of four", Price: 9.99, ImageURL: "https://images.unsplash.com/photo-1595435742656-5272d0b3fa82?w=500", Rating: 4.1, ReviewCount: 305, Stock: 200, Type: domain.ProductTypeEquipment},
		{ID: "p-501", CategoryID: "7", Name: "Carbon Badminton Racket", Description: "85g carbon shaft racket with full cover", Price: 64.0, ImageURL: "https://images.unsplash.com/photo-1626224583764-f87db24ac4ea?w=500", Rating: 4.4, ReviewCount: 52, Stock: 30, Type: domain.ProductTypeEquipment},
		{ID: "p-601", CategoryID: "1", Name: "Kabaddi Training Jersey", Description: "Breathable training jersey for mat and soil play", Price: 21.5, ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500", Rating: 4.0, ReviewCount: 19, Stock: 48, Type: domain.ProductTypeTShirt},
		{ID: "p-701", CategoryID: "9", Name: "Tournament Chess Set", Description: "Weighted pieces with roll-up vinyl board", Price: 29.0, ImageURL: "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=500", Rating: 4.9, ReviewCount: 143, Stock: 66, Type: domain.ProductTypeEquipment},
		{ID: "p-801", CategoryID: "8", Name: "Resistance Band Set", Description: "Five-band workout set with door anchor", Price: 24.99, OriginalPrice: 34.99, ImageURL: "https://images.unsplash.com/photo-1612872087720-bb876e2e67d1?w=500", Rating: 4.3, ReviewCount: 221, Stock: 120, Type: domain.ProductTypeWorkout},
	}
}
