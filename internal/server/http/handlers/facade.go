package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, adminSecret string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade encapsulates product and inventory operations exposed via HTTP.
type CatalogFacade interface {
	Product(ctx context.Context, id int64) (*model.Product, error)
	SearchProducts(ctx context.Context, query string, limit, offset int) (*usecase.SearchResult, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	SetStock(ctx context.Context, productID int64, stock int) error
	BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error
	SetStockAlert(ctx context.Context, productID int64, threshold int) error
	InventoryReport(ctx context.Context) ([]model.Product, error)
	CreateRestockRequest(ctx context.Context, productID int64, quantity int, note string) (*model.RestockRequest, error)
}

// CartFacade provides cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, error)
	ReplaceCart(ctx context.Context, userID int64, items []model.CartItem) error
	MergeCart(ctx context.Context, sessionID string, userID int64) (*model.Cart, error)
	GuestCart(ctx context.Context, sessionID string) (*model.Cart, error)
	ReplaceGuestCart(ctx context.Context, sessionID string, items []model.CartItem) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// PaymentFacade provides payment operations.
type PaymentFacade interface {
	Order(ctx context.Context, id int64) (*model.Order, error)
	StartPayment(ctx context.Context, orderID int64, method model.PaymentMethod, instrument string) (*model.Payment, error)
	VerifyPayment(ctx context.Context, input usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error)
	PaymentsForOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
}

// NotificationFacade provides notification operations.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	PaymentFacade
	NotificationFacade
}
