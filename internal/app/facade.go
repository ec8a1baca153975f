package app

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/usecase"
)

// StorefrontFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer and the background worker.
type StorefrontFacade struct {
	auth          *usecase.AuthUseCase
	catalog       *usecase.CatalogUseCase
	carts         *usecase.CartUseCase
	orders        *usecase.OrderUseCase
	payments      *usecase.PaymentUseCase
	notifications *usecase.NotificationUseCase
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	notifications *usecase.NotificationUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:          auth,
		catalog:       catalog,
		carts:         carts,
		orders:        orders,
		payments:      payments,
		notifications: notifications,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, email, password, adminSecret string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password, adminSecret)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) SearchProducts(ctx context.Context, query string, limit, offset int) (*usecase.SearchResult, error) {
	return f.catalog.Search(ctx, query, limit, offset)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product model.Product) error {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) SetStock(ctx context.Context, productID int64, stock int) error {
	return f.catalog.SetStock(ctx, productID, stock)
}

func (f *StorefrontFacade) BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error {
	return f.catalog.BulkSetStock(ctx, updates)
}

func (f *StorefrontFacade) SetStockAlert(ctx context.Context, productID int64, threshold int) error {
	return f.catalog.SetStockAlert(ctx, productID, threshold)
}

func (f *StorefrontFacade) InventoryReport(ctx context.Context) ([]model.Product, error) {
	return f.catalog.InventoryReport(ctx)
}

func (f *StorefrontFacade) CreateRestockRequest(ctx context.Context, productID int64, quantity int, note string) (*model.RestockRequest, error) {
	return f.catalog.CreateRestockRequest(ctx, productID, quantity, note)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	return f.carts.Get(ctx, userID)
}

func (f *StorefrontFacade) ReplaceCart(ctx context.Context, userID int64, items []model.CartItem) error {
	return f.carts.Replace(ctx, userID, items)
}

func (f *StorefrontFacade) MergeCart(ctx context.Context, sessionID string, userID int64) (*model.Cart, error) {
	return f.carts.MergeOnLogin(ctx, sessionID, userID)
}

func (f *StorefrontFacade) GuestCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	return f.carts.GetForSession(ctx, sessionID)
}

func (f *StorefrontFacade) ReplaceGuestCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	return f.carts.ReplaceForSession(ctx, sessionID, items)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, input)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, number)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StorefrontFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StorefrontFacade) StartPayment(ctx context.Context, orderID int64, method model.PaymentMethod, instrument string) (*model.Payment, error) {
	return f.payments.Start(ctx, orderID, method, instrument)
}

func (f *StorefrontFacade) VerifyPayment(ctx context.Context, input usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error) {
	return f.payments.Verify(ctx, input)
}

func (f *StorefrontFacade) PaymentsForOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return f.payments.ListByOrder(ctx, orderID)
}

func (f *StorefrontFacade) StuckPayments(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error) {
	return f.payments.StuckProcessing(ctx, olderThan, limit)
}

func (f *StorefrontFacade) ResolvePayment(ctx context.Context, payment model.Payment) error {
	_, err := f.payments.Resolve(ctx, payment)
	return err
}

func (f *StorefrontFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	return f.notifications.MarkRead(ctx, userID, notificationID)
}

func (f *StorefrontFacade) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return f.notifications.MarkAllRead(ctx, userID)
}
