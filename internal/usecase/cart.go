package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CartUseCase manages carts of record and the guest merge on login.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Get returns the user's cart; a missing cart reads as empty.
func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	cart, err := u.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.Cart{UserID: &userID}, nil
		}
		return nil, err
	}
	return cart, nil
}

// Replace persists the items as the user's cart of record.
func (u *CartUseCase) Replace(ctx context.Context, userID int64, items []model.CartItem) error {
	if err := validateCartItems(items); err != nil {
		return err
	}
	return u.carts.SaveForUser(ctx, userID, items)
}

// GetForSession returns the guest cart for a session; a missing cart reads
// as empty.
func (u *CartUseCase) GetForSession(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := u.carts.GetBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.Cart{SessionID: sessionID}, nil
		}
		return nil, err
	}
	return cart, nil
}

// ReplaceForSession persists the items as the guest cart, keyed by session.
func (u *CartUseCase) ReplaceForSession(ctx context.Context, sessionID string, items []model.CartItem) error {
	if err := validateCartItems(items); err != nil {
		return err
	}
	return u.carts.SaveForSession(ctx, sessionID, items)
}

func validateCartItems(items []model.CartItem) error {
	v := domainErrors.NewValidationError()
	for i, item := range items {
		if item.ProductID <= 0 {
			v.Add(itemField(i, "productId"), "product id is required")
		}
		if item.Quantity <= 0 {
			v.Add(itemField(i, "quantity"), "quantity must be positive")
		}
	}
	if !v.Empty() {
		return v
	}
	return nil
}

// MergeOnLogin reconciles a guest cart with the user's persisted cart.
// Quantities for the same product are summed, items unique to either side
// are preserved, and the guest copy is cleared. Merged quantities are not
// capped against stock here; checkout validates availability.
func (u *CartUseCase) MergeOnLogin(ctx context.Context, sessionID string, userID int64) (*model.Cart, error) {
	guest, err := u.carts.GetBySession(ctx, sessionID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	remote, err := u.carts.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	var guestItems, remoteItems []model.CartItem
	if guest != nil {
		guestItems = guest.Items
	}
	if remote != nil {
		remoteItems = remote.Items
	}

	merged := MergeCartItems(guestItems, remoteItems)
	if err := u.carts.SaveForUser(ctx, userID, merged); err != nil {
		return nil, err
	}
	if guest != nil {
		if err := u.carts.DeleteBySession(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	return &model.Cart{UserID: &userID, Items: merged}, nil
}

// MergeCartItems sums quantities per product id across both sides. Item
// attributes are taken from whichever side is seen first. No ordering is
// promised on the result.
func MergeCartItems(local, remote []model.CartItem) []model.CartItem {
	merged := make([]model.CartItem, 0, len(local)+len(remote))
	index := make(map[int64]int, len(local)+len(remote))

	add := func(items []model.CartItem) {
		for _, item := range items {
			if pos, ok := index[item.ProductID]; ok {
				merged[pos].Quantity += item.Quantity
				continue
			}
			index[item.ProductID] = len(merged)
			merged = append(merged, item)
		}
	}
	add(local)
	add(remote)

	return merged
}

func itemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}
