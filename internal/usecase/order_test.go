package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func validAddress() model.Address {
	return model.Address{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "5551234567",
		Line1: "1 Main St",
		City:  "Springfield",
		State: "IL",
		Zip:   "62704",
	}
}

func catalogWith(products ...model.Product) *testhelpers.ProductRepositoryStub {
	return &testhelpers.ProductRepositoryStub{Products: products}
}

func TestOrderUseCasePlaceSuccess(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	products := catalogWith(
		model.Product{ID: 1, Name: "widget", OriginalPrice: 100, SalePrice: 80, Stock: 10},
		model.Product{ID: 2, Name: "gadget", OriginalPrice: 50, Stock: 10},
	)
	notifier := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(orders, products, notifier)

	userID := int64(7)
	order, err := uc.Place(context.Background(), PlaceOrderInput{
		UserID:        &userID,
		Items:         []PlaceOrderItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
		Address:       validAddress(),
		PaymentMethod: model.PaymentMethodUPI,
	})
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.TotalAmount != 2*80+50 {
		t.Fatalf("expected total 210 using sale price, got %v", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 line snapshots, got %d", len(order.Items))
	}
	if order.Items[0].Name != "widget" || order.Items[0].UnitPrice != 80 {
		t.Fatalf("unexpected first line snapshot: %+v", order.Items[0])
	}
	if len(order.TrackingHistory) != 1 || order.TrackingHistory[0].Status != "Order Placed" {
		t.Fatalf("expected single placed tracking event, got %+v", order.TrackingHistory)
	}
	if len(notifier.Calls) != 1 || notifier.Calls[0].UserID != 7 {
		t.Fatalf("expected one notification for user 7, got %+v", notifier.Calls)
	}
}

func TestOrderUseCasePlaceGuestSkipsNotification(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	products := catalogWith(model.Product{ID: 1, Name: "widget", OriginalPrice: 10, Stock: 5})
	notifier := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(orders, products, notifier)

	order, err := uc.Place(context.Background(), PlaceOrderInput{
		SessionID:     "sess-1",
		Items:         []PlaceOrderItem{{ProductID: 1, Quantity: 1}},
		Address:       validAddress(),
		PaymentMethod: model.PaymentMethodCard,
	})
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.UserID != nil {
		t.Fatalf("expected guest order without user, got %v", order.UserID)
	}
	if order.SessionID != "sess-1" {
		t.Fatalf("expected session id preserved, got %q", order.SessionID)
	}
	if len(notifier.Calls) != 0 {
		t.Fatalf("guest checkout must not notify, got %+v", notifier.Calls)
	}
}

func TestOrderUseCasePlaceValidatesBeforeWrites(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(context.Context, repository.NewOrder) (*model.Order, error) {
			t.Fatal("create should not be called for invalid input")
			return nil, nil
		},
	}
	uc := NewOrderUseCase(orders, catalogWith(), &testhelpers.NotifierStub{})

	_, err := uc.Place(context.Background(), PlaceOrderInput{
		Items:         []PlaceOrderItem{{ProductID: 1, Quantity: 0}, {ProductID: 1, Quantity: 2}},
		Address:       model.Address{},
		PaymentMethod: "cash",
	})
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"items[0].quantity", "items[1].productId", "paymentMethod", "address.name"} {
		if _, present := v.Fields[field]; !present {
			t.Fatalf("expected field %q in validation error, got %v", field, v.Fields)
		}
	}
}

func TestOrderUseCasePlaceRejectsEmptyItems(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, catalogWith(), &testhelpers.NotifierStub{})

	_, err := uc.Place(context.Background(), PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: model.PaymentMethodUPI,
	})
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, present := v.Fields["items"]; !present {
		t.Fatalf("expected items field, got %v", v.Fields)
	}
}

func TestOrderUseCasePlaceRejectsUnknownProduct(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, catalogWith(), &testhelpers.NotifierStub{})

	_, err := uc.Place(context.Background(), PlaceOrderInput{
		Items:         []PlaceOrderItem{{ProductID: 99, Quantity: 1}},
		Address:       validAddress(),
		PaymentMethod: model.PaymentMethodUPI,
	})
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, present := v.Fields["items[0].productId"]; !present {
		t.Fatalf("expected unknown product field, got %v", v.Fields)
	}
}

func TestOrderUseCasePlacePropagatesInsufficientStock(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(context.Context, repository.NewOrder) (*model.Order, error) {
			return nil, domainErrors.ErrInsufficientStock
		},
	}
	products := catalogWith(model.Product{ID: 1, Name: "widget", OriginalPrice: 10, Stock: 1})
	uc := NewOrderUseCase(orders, products, &testhelpers.NotifierStub{})

	_, err := uc.Place(context.Background(), PlaceOrderInput{
		Items:         []PlaceOrderItem{{ProductID: 1, Quantity: 5}},
		Address:       validAddress(),
		PaymentMethod: model.PaymentMethodUPI,
	})
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
}

func TestCanTransitionTable(t *testing.T) {
	allowed := []struct {
		from, to model.OrderStatus
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed},
		{model.OrderStatusConfirmed, model.OrderStatusProcessing},
		{model.OrderStatusConfirmed, model.OrderStatusShipped},
		{model.OrderStatusProcessing, model.OrderStatusShipped},
		{model.OrderStatusShipped, model.OrderStatusDelivered},
		{model.OrderStatusPending, model.OrderStatusCancelled},
		{model.OrderStatusConfirmed, model.OrderStatusCancelled},
		{model.OrderStatusProcessing, model.OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct {
		from, to model.OrderStatus
	}{
		{model.OrderStatusPending, model.OrderStatusShipped},
		{model.OrderStatusPending, model.OrderStatusDelivered},
		{model.OrderStatusShipped, model.OrderStatusCancelled},
		{model.OrderStatusDelivered, model.OrderStatusCancelled},
		{model.OrderStatusDelivered, model.OrderStatusShipped},
		{model.OrderStatusCancelled, model.OrderStatusConfirmed},
		{model.OrderStatusConfirmed, model.OrderStatusConfirmed},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestOrderUseCaseUpdateStatusRejectsInvalidTransition(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: 1, Number: "ORD1", Status: model.OrderStatusPending}},
		UpdateStatusFn: func(context.Context, int64, model.OrderStatus, model.TrackingEvent) error {
			t.Fatal("update should not be called for invalid transition")
			return nil
		},
	}
	uc := NewOrderUseCase(orders, catalogWith(), &testhelpers.NotifierStub{})

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition error, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatusAppendsOneEvent(t *testing.T) {
	userID := int64(3)
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{
			ID: 1, UserID: &userID, Number: "ORD1",
			Status:          model.OrderStatusConfirmed,
			TrackingHistory: []model.TrackingEvent{{Status: "Order Placed"}},
		}},
	}
	notifier := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(orders, catalogWith(), notifier)
	uc.now = func() time.Time { return time.Unix(1000, 0) }

	order, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if order.Status != model.OrderStatusShipped {
		t.Fatalf("expected shipped status, got %s", order.Status)
	}
	if len(order.TrackingHistory) != 2 {
		t.Fatalf("expected exactly one appended tracking event, got %d", len(order.TrackingHistory))
	}
	last := order.TrackingHistory[1]
	if last.Status != "Shipped" || !last.CreatedAt.Equal(time.Unix(1000, 0)) {
		t.Fatalf("unexpected tracking event %+v", last)
	}
	if len(orders.UpdateCalls) != 1 {
		t.Fatalf("expected one repository update, got %d", len(orders.UpdateCalls))
	}
	if len(notifier.Calls) != 1 || notifier.Calls[0].UserID != 3 {
		t.Fatalf("expected shipped notification for user 3, got %+v", notifier.Calls)
	}
}

func TestOrderUseCaseUpdateStatusSkipsNotifyOnCancel(t *testing.T) {
	userID := int64(3)
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: 1, UserID: &userID, Number: "ORD1", Status: model.OrderStatusPending}},
	}
	notifier := &testhelpers.NotifierStub{}
	uc := NewOrderUseCase(orders, catalogWith(), notifier)

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if len(notifier.Calls) != 0 {
		t.Fatalf("cancellation must not notify, got %+v", notifier.Calls)
	}
}

func TestOrderUseCaseUpdateStatusNotFound(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, catalogWith(), &testhelpers.NotifierStub{})

	if _, err := uc.UpdateStatus(context.Background(), 42, model.OrderStatusConfirmed); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestOrderUseCaseListByUser(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{Number: "ORD1"}, {Number: "ORD2"}}}
	uc := NewOrderUseCase(orders, catalogWith(), &testhelpers.NotifierStub{})

	list, err := uc.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
}
