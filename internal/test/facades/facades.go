// Package facades holds stub implementations of the HTTP-layer facade
// interfaces. They live apart from the repository stubs so that use case
// tests can depend on those without pulling the use case types in here back
// into their own package.
package facades

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/gateway"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password, adminSecret string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, adminSecret)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns stored claims for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1}, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductFn       func(context.Context, int64) (*model.Product, error)
	SearchFn        func(context.Context, string, int, int) (*usecase.SearchResult, error)
	CreateFn        func(context.Context, model.Product) (*model.Product, error)
	UpdateFn        func(context.Context, model.Product) error
	DeleteFn        func(context.Context, int64) error
	SetStockFn      func(context.Context, int64, int) error
	BulkSetStockFn  func(context.Context, []repository.StockUpdate) error
	SetStockAlertFn func(context.Context, int64, int) error
	ReportFn        func(context.Context) ([]model.Product, error)
	RestockFn       func(context.Context, int64, int, string) (*model.RestockRequest, error)
}

// Product returns a default product or delegates to the override.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget", OriginalPrice: 10, Stock: 5}, nil
}

// SearchProducts returns a default single-product result.
func (s CatalogFacadeStub) SearchProducts(ctx context.Context, query string, limit, offset int) (*usecase.SearchResult, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, limit, offset)
	}
	return &usecase.SearchResult{
		Products: []model.Product{{ID: 1, Name: "widget"}},
		Total:    1,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// CreateProduct echoes the product back with an identifier.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	product.ID = 1
	return &product, nil
}

// UpdateProduct delegates to the override when provided.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return nil
}

// DeleteProduct delegates to the override when provided.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// SetStock delegates to the override when provided.
func (s CatalogFacadeStub) SetStock(ctx context.Context, productID int64, stock int) error {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, productID, stock)
	}
	return nil
}

// BulkSetStock delegates to the override when provided.
func (s CatalogFacadeStub) BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error {
	if s.BulkSetStockFn != nil {
		return s.BulkSetStockFn(ctx, updates)
	}
	return nil
}

// SetStockAlert delegates to the override when provided.
func (s CatalogFacadeStub) SetStockAlert(ctx context.Context, productID int64, threshold int) error {
	if s.SetStockAlertFn != nil {
		return s.SetStockAlertFn(ctx, productID, threshold)
	}
	return nil
}

// InventoryReport returns preconfigured low-stock products.
func (s CatalogFacadeStub) InventoryReport(ctx context.Context) ([]model.Product, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "widget", Stock: 1, LowStockThreshold: 5}}, nil
}

// CreateRestockRequest echoes a recorded restock request.
func (s CatalogFacadeStub) CreateRestockRequest(ctx context.Context, productID int64, quantity int, note string) (*model.RestockRequest, error) {
	if s.RestockFn != nil {
		return s.RestockFn(ctx, productID, quantity, note)
	}
	return &model.RestockRequest{ID: 1, ProductID: productID, Quantity: quantity, Note: note, Status: model.RestockRequestOpen}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn         func(context.Context, int64) (*model.Cart, error)
	ReplaceFn      func(context.Context, int64, []model.CartItem) error
	MergeFn        func(context.Context, string, int64) (*model.Cart, error)
	GuestCartFn    func(context.Context, string) (*model.Cart, error)
	ReplaceGuestFn func(context.Context, string, []model.CartItem) error
}

// Cart returns an empty cart unless overridden.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{UserID: &userID, Items: []model.CartItem{}}, nil
}

// ReplaceCart delegates to the override when provided.
func (s CartFacadeStub) ReplaceCart(ctx context.Context, userID int64, items []model.CartItem) error {
	if s.ReplaceFn != nil {
		return s.ReplaceFn(ctx, userID, items)
	}
	return nil
}

// MergeCart returns the merged cart for the user.
func (s CartFacadeStub) MergeCart(ctx context.Context, sessionID string, userID int64) (*model.Cart, error) {
	if s.MergeFn != nil {
		return s.MergeFn(ctx, sessionID, userID)
	}
	return &model.Cart{UserID: &userID, Items: []model.CartItem{}}, nil
}

// GuestCart returns an empty session cart unless overridden.
func (s CartFacadeStub) GuestCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	if s.GuestCartFn != nil {
		return s.GuestCartFn(ctx, sessionID)
	}
	return &model.Cart{SessionID: sessionID, Items: []model.CartItem{}}, nil
}

// ReplaceGuestCart delegates to the override when provided.
func (s CartFacadeStub) ReplaceGuestCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	if s.ReplaceGuestFn != nil {
		return s.ReplaceGuestFn(ctx, sessionID, items)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, usecase.PlaceOrderInput) (*model.Order, error)
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	ByNumberFn     func(context.Context, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, input)
	}
	return &model.Order{ID: 1, UserID: input.UserID, SessionID: input.SessionID, Number: "ORD1", Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{Number: "ORD1", UserID: &userID}}, nil
}

// OrderByNumber returns matched order via override or a default one.
func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.ByNumberFn != nil {
		return s.ByNumberFn(ctx, number)
	}
	userID := int64(1)
	return &model.Order{ID: 1, UserID: &userID, Number: number}, nil
}

// UpdateOrderStatus records the transition through the override.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Number: "ORD1", Status: status}, nil
}

// PaymentFacadeStub simulates payment operations.
type PaymentFacadeStub struct {
	OrderFn  func(context.Context, int64) (*model.Order, error)
	StartFn  func(context.Context, int64, model.PaymentMethod, string) (*model.Payment, error)
	VerifyFn func(context.Context, usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error)
	ListFn   func(context.Context, int64) ([]model.Payment, error)
}

// Order returns an order owned by user 1 unless overridden.
func (s PaymentFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	userID := int64(1)
	return &model.Order{ID: id, UserID: &userID, Number: "ORD1", TotalAmount: 100}, nil
}

// StartPayment returns an initiated payment unless overridden.
func (s PaymentFacadeStub) StartPayment(ctx context.Context, orderID int64, method model.PaymentMethod, instrument string) (*model.Payment, error) {
	if s.StartFn != nil {
		return s.StartFn(ctx, orderID, method, instrument)
	}
	return &model.Payment{ID: 1, OrderID: orderID, TransactionID: "TXN1", Method: method, Status: model.PaymentStatusInitiated}, nil
}

// VerifyPayment returns a verified verdict unless overridden.
func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, input usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, input)
	}
	return &usecase.VerifyPaymentResult{TransactionID: input.TransactionID, Outcome: gateway.OutcomeVerified, Message: "payment verified"}, nil
}

// PaymentsForOrder returns predefined payment attempts.
func (s PaymentFacadeStub) PaymentsForOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return []model.Payment{{ID: 1, OrderID: orderID, TransactionID: "TXN1"}}, nil
}

// NotificationFacadeStub simulates notification operations.
type NotificationFacadeStub struct {
	ListFn        func(context.Context, int64) ([]model.Notification, error)
	MarkReadFn    func(context.Context, int64, int64) error
	MarkAllReadFn func(context.Context, int64) error
}

// Notifications returns predefined notifications.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Notification{{ID: 1, UserID: userID, Title: "hello", Type: model.NotificationTypeSystem, CreatedAt: time.Unix(0, 0)}}, nil
}

// MarkNotificationRead delegates to the override when provided.
func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, notificationID)
	}
	return nil
}

// MarkAllNotificationsRead delegates to the override when provided.
func (s NotificationFacadeStub) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	if s.MarkAllReadFn != nil {
		return s.MarkAllReadFn(ctx, userID)
	}
	return nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	NotificationFacadeStub
}
