// Command storefront drives one shopping session from the terminal:
// it opens the persisted session state, refreshes the catalog from
// the API and runs a single subcommand against the session store.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/catalog"
	"github.com/sportshub/storefront/internal/config"
	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/internal/store"
	"github.com/sportshub/storefront/pkg/ident"
	"github.com/sportshub/storefront/pkg/kv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	storage := openStorage(cfg.Session, logger)
	client := catalog.NewClient(cfg.Catalog.BaseURL, logger)

	session := store.New(storage, client, catalog.FallbackProducts(), ident.NewUUIDGenerator(), logger)
	defer session.Close()

	if err := run(session, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func openStorage(cfg config.SessionConfig, logger *zap.Logger) kv.Store {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return kv.NewRedis(client, "session:", logger)
	case "memory":
		return kv.NewMemory()
	default:
		return kv.OpenFile(cfg.FilePath, logger)
	}
}

func run(session *store.Store, command string, args []string) error {
	switch command {
	case "products":
		for _, p := range session.Products() {
			printProduct(p)
		}
	case "search":
		if len(args) < 1 {
			return fmt.Errorf("usage: storefront search <query>")
		}
		for _, p := range session.SearchProducts(args[0]) {
			printProduct(p)
		}
	case "recommend":
		limit := 0
		if len(args) > 0 {
			limit, _ = strconv.Atoi(args[0])
		}
		for _, p := range session.RecommendedProducts(limit) {
			printProduct(p)
		}
	case "cart":
		return runCart(session, args)
	case "wishlist":
		return runWishlist(session, args)
	case "orders":
		for _, o := range session.Orders() {
			fmt.Printf("%s  %-10s  %8.2f  %s\n", o.CreatedAt.Format("2006-01-02"), o.Status, o.TotalAmount, o.TrackingNumber)
		}
	case "checkout":
		return runCheckout(session, args)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

func runCart(session *store.Store, args []string) error {
	if len(args) == 0 {
		for _, item := range session.Cart() {
			fmt.Printf("%dx %-35s %8.2f\n", item.Quantity, item.Product.Name, item.Product.Price*float64(item.Quantity))
		}
		fmt.Printf("total: %.2f (%d items)\n", session.CartTotal(), session.CartCount())
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront cart add <product-id>")
		}
		product, ok := session.Product(args[1])
		if !ok {
			return fmt.Errorf("unknown product: %s", args[1])
		}
		session.AddToCart(product)
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront cart remove <product-id>")
		}
		session.RemoveFromCart(args[1])
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: storefront cart set <product-id> <quantity>")
		}
		quantity, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[2])
		}
		session.UpdateCartQuantity(args[1], quantity)
	case "clear":
		session.ClearCart()
	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
	return nil
}

func runWishlist(session *store.Store, args []string) error {
	if len(args) == 0 {
		for _, item := range session.Wishlist() {
			fmt.Printf("%-35s %8.2f\n", item.Product.Name, item.Product.Price)
		}
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront wishlist add <product-id>")
		}
		product, ok := session.Product(args[1])
		if !ok {
			return fmt.Errorf("unknown product: %s", args[1])
		}
		session.AddToWishlist(product)
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront wishlist remove <product-id>")
		}
		session.RemoveFromWishlist(args[1])
	default:
		return fmt.Errorf("unknown wishlist command: %s", args[0])
	}
	return nil
}

func runCheckout(session *store.Store, args []string) error {
	cart := session.Cart()
	if len(cart) == 0 {
		return fmt.Errorf("cart is empty")
	}

	paymentMethod := "cod"
	if len(args) > 0 {
		paymentMethod = args[0]
	}

	items := make([]domain.OrderItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, domain.OrderItem{
			Product:  item.Product,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
		})
	}

	order := session.PlaceOrder(domain.Order{
		TotalAmount:   session.CartTotal(),
		PaymentMethod: paymentMethod,
		Items:         items,
	})
	session.ClearCart()

	fmt.Printf("order placed: %s\n", order.ID)
	fmt.Printf("tracking number: %s\n", order.TrackingNumber)
	return nil
}

func usage() {
	fmt.Println("Usage: storefront <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  products                      list the catalog")
	fmt.Println("  search <query>                search by name or description")
	fmt.Println("  recommend [limit]             top-rated products")
	fmt.Println("  cart [add|remove|set|clear]   show or change the cart")
	fmt.Println("  wishlist [add|remove]         show or change the wishlist")
	fmt.Println("  checkout [payment-method]     place an order from the cart")
	fmt.Println("  orders                        list placed orders")
}

func printProduct(p domain.Product) {
	fmt.Printf("%-8s %-35s %8.2f  %.1f★\n", p.ID, p.Name, p.Price, p.Rating)
}
