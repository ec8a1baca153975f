package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, admin bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Admin: admin}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn               func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn               func(context.Context, *model.Product) error
	DeleteFn               func(context.Context, int64) error
	GetByIDFn              func(context.Context, int64) (*model.Product, error)
	GetByIDsFn             func(context.Context, []int64) ([]model.Product, error)
	SearchFn               func(context.Context, string, int, int) ([]model.Product, int, error)
	SetStockFn             func(context.Context, int64, int) error
	BulkSetStockFn         func(context.Context, []repository.StockUpdate) error
	AdjustStockFn          func(context.Context, int64, int) error
	SetLowStockThresholdFn func(context.Context, int64, int) error
	ListLowStockFn         func(context.Context) ([]model.Product, error)
	CreateRestockFn        func(context.Context, *model.RestockRequest) (*model.RestockRequest, error)

	Products     []model.Product
	StockCalls   []repository.StockUpdate
	AdjustCalls  []repository.StockUpdate
	RestockCalls []model.RestockRequest
}

// Create returns the product with an assigned identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = int64(len(s.Products) + 1)
	s.Products = append(s.Products, created)
	return &created, nil
}

// Update applies override when provided.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	for i, p := range s.Products {
		if p.ID == product.ID {
			s.Products[i] = *product
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes the product when present.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, p := range s.Products {
		if p.ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetByID returns matched product from the stored slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByIDs returns every stored product matching the requested identifiers.
func (s *ProductRepositoryStub) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.GetByIDsFn != nil {
		return s.GetByIDsFn(ctx, ids)
	}
	var out []model.Product
	for _, id := range ids {
		for _, p := range s.Products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// Search returns the stored slice unless overridden.
func (s *ProductRepositoryStub) Search(ctx context.Context, query string, limit, offset int) ([]model.Product, int, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, limit, offset)
	}
	return s.Products, len(s.Products), nil
}

// SetStock records the call.
func (s *ProductRepositoryStub) SetStock(ctx context.Context, id int64, stock int) error {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, id, stock)
	}
	s.StockCalls = append(s.StockCalls, repository.StockUpdate{ProductID: id, Stock: stock})
	return nil
}

// BulkSetStock records every update.
func (s *ProductRepositoryStub) BulkSetStock(ctx context.Context, updates []repository.StockUpdate) error {
	if s.BulkSetStockFn != nil {
		return s.BulkSetStockFn(ctx, updates)
	}
	s.StockCalls = append(s.StockCalls, updates...)
	return nil
}

// AdjustStock records the delta.
func (s *ProductRepositoryStub) AdjustStock(ctx context.Context, id int64, delta int) error {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, id, delta)
	}
	s.AdjustCalls = append(s.AdjustCalls, repository.StockUpdate{ProductID: id, Stock: delta})
	return nil
}

// SetLowStockThreshold applies override when provided.
func (s *ProductRepositoryStub) SetLowStockThreshold(ctx context.Context, id int64, threshold int) error {
	if s.SetLowStockThresholdFn != nil {
		return s.SetLowStockThresholdFn(ctx, id, threshold)
	}
	return nil
}

// ListLowStock returns low-stock products from the stored slice.
func (s *ProductRepositoryStub) ListLowStock(ctx context.Context) ([]model.Product, error) {
	if s.ListLowStockFn != nil {
		return s.ListLowStockFn(ctx)
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.Stock <= p.LowStockThreshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateRestockRequest records the request and assigns an identifier.
func (s *ProductRepositoryStub) CreateRestockRequest(ctx context.Context, req *model.RestockRequest) (*model.RestockRequest, error) {
	if s.CreateRestockFn != nil {
		return s.CreateRestockFn(ctx, req)
	}
	created := *req
	created.ID = int64(len(s.RestockCalls) + 1)
	s.RestockCalls = append(s.RestockCalls, created)
	return &created, nil
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
	Event   model.TrackingEvent
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, repository.NewOrder) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	GetByNumberFn  func(context.Context, string) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.TrackingEvent) error

	Created     []repository.NewOrder
	Orders      []model.Order
	UpdateCalls []OrderUpdateCall
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := model.Order{
		ID:              int64(len(s.Created)),
		UserID:          order.UserID,
		SessionID:       order.SessionID,
		Number:          order.Number,
		Items:           order.Items,
		TotalAmount:     order.TotalAmount,
		Address:         order.Address,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   model.OrderPaymentPending,
		Status:          model.OrderStatusPending,
		TrackingHistory: []model.TrackingEvent{order.FirstEvent},
	}
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event model.TrackingEvent) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, event)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status, Event: event})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			s.Orders[i].TrackingHistory = append(s.Orders[i].TrackingHistory, event)
		}
	}
	return nil
}

// PaymentUpdateCall stores one payment status change.
type PaymentUpdateCall struct {
	PaymentID int64
	Status    model.PaymentStatus
}

// PaymentRepositoryStub lets tests control payment persistence.
type PaymentRepositoryStub struct {
	CreateFn       func(context.Context, *model.Payment) (*model.Payment, error)
	GetFn          func(context.Context, string) (*model.Payment, error)
	ListByOrderFn  func(context.Context, int64) ([]model.Payment, error)
	UpdateStatusFn func(context.Context, int64, model.PaymentStatus) error
	CompleteFn     func(context.Context, int64, int64, model.TrackingEvent) error
	SelectStuckFn  func(context.Context, time.Duration, int) ([]model.Payment, error)

	Payments    []model.Payment
	UpdateCalls []PaymentUpdateCall
	PaidOrders  []int64
}

// Create assigns an identifier and stores the payment.
func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payment)
	}
	created := *payment
	created.ID = int64(len(s.Payments) + 1)
	s.Payments = append(s.Payments, created)
	return &created, nil
}

// GetByTransactionID returns matched payment from the stored slice.
func (s *PaymentRepositoryStub) GetByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, transactionID)
	}
	for _, p := range s.Payments {
		if p.TransactionID == transactionID {
			payment := p
			return &payment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByOrder returns payments for the order.
func (s *PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	var out []model.Payment
	for _, p := range s.Payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateStatus records status changes.
func (s *PaymentRepositoryStub) UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, paymentID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, PaymentUpdateCall{PaymentID: paymentID, Status: status})
	for i := range s.Payments {
		if s.Payments[i].ID == paymentID {
			s.Payments[i].Status = status
		}
	}
	return nil
}

// CompleteAndMarkOrderPaid completes the payment and records the paid order.
func (s *PaymentRepositoryStub) CompleteAndMarkOrderPaid(ctx context.Context, paymentID, orderID int64, event model.TrackingEvent) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, paymentID, orderID, event)
	}
	for i := range s.Payments {
		if s.Payments[i].ID == paymentID {
			s.Payments[i].Status = model.PaymentStatusCompleted
		}
	}
	s.PaidOrders = append(s.PaidOrders, orderID)
	return nil
}

// SelectStuckProcessing returns configured stuck payments.
func (s *PaymentRepositoryStub) SelectStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]model.Payment, error) {
	if s.SelectStuckFn != nil {
		return s.SelectStuckFn(ctx, olderThan, limit)
	}
	var out []model.Payment
	for _, p := range s.Payments {
		if p.Status == model.PaymentStatusProcessing {
			out = append(out, p)
		}
	}
	return out, nil
}

// CartRepositoryStub stores carts in-memory for tests.
type CartRepositoryStub struct {
	ByUser    map[int64][]model.CartItem
	BySession map[string][]model.CartItem
	Err       error
	Deleted   []string
}

// NewCartRepositoryStub constructs stub repository with initialized maps.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{
		ByUser:    make(map[int64][]model.CartItem),
		BySession: make(map[string][]model.CartItem),
	}
}

// GetByUser fetches the user's cart or returns not found.
func (s *CartRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	items, ok := s.ByUser[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	id := userID
	return &model.Cart{UserID: &id, Items: items}, nil
}

// GetBySession fetches the session cart or returns not found.
func (s *CartRepositoryStub) GetBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	items, ok := s.BySession[sessionID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Cart{SessionID: sessionID, Items: items}, nil
}

// SaveForUser replaces the user's cart items.
func (s *CartRepositoryStub) SaveForUser(ctx context.Context, userID int64, items []model.CartItem) error {
	if s.Err != nil {
		return s.Err
	}
	if s.ByUser == nil {
		s.ByUser = make(map[int64][]model.CartItem)
	}
	s.ByUser[userID] = items
	return nil
}

// SaveForSession replaces the session cart items.
func (s *CartRepositoryStub) SaveForSession(ctx context.Context, sessionID string, items []model.CartItem) error {
	if s.Err != nil {
		return s.Err
	}
	if s.BySession == nil {
		s.BySession = make(map[string][]model.CartItem)
	}
	s.BySession[sessionID] = items
	return nil
}

// DeleteBySession removes the session cart and records the call.
func (s *CartRepositoryStub) DeleteBySession(ctx context.Context, sessionID string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.BySession, sessionID)
	s.Deleted = append(s.Deleted, sessionID)
	return nil
}

// NotificationRepositoryStub stores notifications in-memory for tests.
type NotificationRepositoryStub struct {
	Items    []model.Notification
	Err      error
	ReadIDs  []int64
	AllReads []int64
}

// Create assigns an identifier and stores the notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *n
	created.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, created)
	return &created, nil
}

// ListByUser returns stored notifications for the user.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Notification
	for _, n := range s.Items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkRead records the invocation.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.ReadIDs = append(s.ReadIDs, notificationID)
	return nil
}

// MarkAllRead records the invocation.
func (s *NotificationRepositoryStub) MarkAllRead(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.AllReads = append(s.AllReads, userID)
	return nil
}
