package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func TestCartUseCaseGetMissingReadsEmpty(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub())

	cart, err := uc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if cart.UserID == nil || *cart.UserID != 5 {
		t.Fatalf("expected cart bound to user 5, got %+v", cart)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestCartUseCaseGetPropagatesError(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewCartUseCase(repo)

	if _, err := uc.Get(context.Background(), 5); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestCartUseCaseReplaceValidation(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub())

	err := uc.Replace(context.Background(), 1, []model.CartItem{
		{ProductID: 0, Quantity: 1},
		{ProductID: 2, Quantity: 0},
	})
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"items[0].productId", "items[1].quantity"} {
		if _, present := v.Fields[field]; !present {
			t.Fatalf("expected field %q, got %v", field, v.Fields)
		}
	}
}

func TestCartUseCaseReplacePersists(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(repo)

	items := []model.CartItem{{ProductID: 1, Quantity: 2, Name: "widget"}}
	if err := uc.Replace(context.Background(), 1, items); err != nil {
		t.Fatalf("replace returned error: %v", err)
	}
	if len(repo.ByUser[1]) != 1 || repo.ByUser[1][0].ProductID != 1 {
		t.Fatalf("expected persisted cart, got %+v", repo.ByUser[1])
	}
}

func TestCartUseCaseGetForSessionMissingReadsEmpty(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub())

	cart, err := uc.GetForSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if cart.SessionID != "sess-1" {
		t.Fatalf("expected cart bound to session, got %+v", cart)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestCartUseCaseReplaceForSessionValidation(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub())

	err := uc.ReplaceForSession(context.Background(), "sess-1", []model.CartItem{{ProductID: 1, Quantity: -1}})
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, present := v.Fields["items[0].quantity"]; !present {
		t.Fatalf("expected quantity field, got %v", v.Fields)
	}
}

func TestCartUseCaseGuestCartSurvivesUntilMerge(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(repo)

	items := []model.CartItem{{ProductID: 1, Quantity: 2, Name: "widget"}}
	if err := uc.ReplaceForSession(context.Background(), "sess-1", items); err != nil {
		t.Fatalf("replace returned error: %v", err)
	}

	cart, err := uc.GetForSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != 1 {
		t.Fatalf("expected persisted guest cart, got %+v", cart.Items)
	}

	merged, err := uc.MergeOnLogin(context.Background(), "sess-1", 7)
	if err != nil {
		t.Fatalf("merge returned error: %v", err)
	}
	if len(merged.Items) != 1 || merged.Items[0].Quantity != 2 {
		t.Fatalf("expected guest items adopted on login, got %+v", merged.Items)
	}
	if _, ok := repo.BySession["sess-1"]; ok {
		t.Fatal("guest cart must be cleared after merge")
	}
}

func TestMergeCartItemsSumsQuantities(t *testing.T) {
	local := []model.CartItem{
		{ProductID: 1, Name: "widget", UnitPrice: 10, Quantity: 2},
		{ProductID: 2, Name: "gadget", UnitPrice: 5, Quantity: 1},
	}
	remote := []model.CartItem{
		{ProductID: 1, Name: "widget", UnitPrice: 10, Quantity: 3},
		{ProductID: 3, Name: "gizmo", UnitPrice: 7, Quantity: 4},
	}

	merged := MergeCartItems(local, remote)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged lines, got %d", len(merged))
	}
	byID := make(map[int64]model.CartItem, len(merged))
	for _, item := range merged {
		byID[item.ProductID] = item
	}
	if byID[1].Quantity != 5 {
		t.Fatalf("expected summed quantity 5, got %d", byID[1].Quantity)
	}
	if byID[2].Quantity != 1 || byID[3].Quantity != 4 {
		t.Fatalf("unique items must be preserved, got %+v", byID)
	}
}

func TestMergeCartItemsKeepsFirstSeenAttributes(t *testing.T) {
	local := []model.CartItem{{ProductID: 1, Name: "local name", UnitPrice: 10, Quantity: 1}}
	remote := []model.CartItem{{ProductID: 1, Name: "remote name", UnitPrice: 12, Quantity: 1}}

	merged := MergeCartItems(local, remote)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(merged))
	}
	if merged[0].Name != "local name" || merged[0].UnitPrice != 10 {
		t.Fatalf("expected first-seen attributes, got %+v", merged[0])
	}
}

func TestCartUseCaseMergeOnLogin(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	repo.BySession["sess-1"] = []model.CartItem{{ProductID: 1, Quantity: 2}}
	repo.ByUser[7] = []model.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}}
	uc := NewCartUseCase(repo)

	cart, err := uc.MergeOnLogin(context.Background(), "sess-1", 7)
	if err != nil {
		t.Fatalf("merge returned error: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 merged lines, got %+v", cart.Items)
	}
	var widget model.CartItem
	for _, item := range cart.Items {
		if item.ProductID == 1 {
			widget = item
		}
	}
	if widget.Quantity != 3 {
		t.Fatalf("expected summed quantity 3, got %d", widget.Quantity)
	}
	if _, ok := repo.BySession["sess-1"]; ok {
		t.Fatal("guest cart must be cleared after merge")
	}
	if len(repo.ByUser[7]) != 2 {
		t.Fatalf("merged cart must be persisted for the user, got %+v", repo.ByUser[7])
	}
}

func TestCartUseCaseMergeOnLoginNoGuestCart(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	repo.ByUser[7] = []model.CartItem{{ProductID: 2, Quantity: 1}}
	uc := NewCartUseCase(repo)

	cart, err := uc.MergeOnLogin(context.Background(), "absent", 7)
	if err != nil {
		t.Fatalf("merge returned error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != 2 {
		t.Fatalf("expected remote cart untouched, got %+v", cart.Items)
	}
	if len(repo.Deleted) != 0 {
		t.Fatalf("no session delete expected, got %v", repo.Deleted)
	}
}

func TestCartUseCaseMergeOnLoginNoRemoteCart(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	repo.BySession["sess-1"] = []model.CartItem{{ProductID: 1, Quantity: 4}}
	uc := NewCartUseCase(repo)

	cart, err := uc.MergeOnLogin(context.Background(), "sess-1", 7)
	if err != nil {
		t.Fatalf("merge returned error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 4 {
		t.Fatalf("expected guest cart adopted, got %+v", cart.Items)
	}
}
