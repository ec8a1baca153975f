package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/adapter/gateway"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		newAuthUseCase,
		newNotificationUseCase,
		func(n *NotificationUseCase) Notifier { return n },
		newOrderUseCase,
		newPaymentUseCase,
		NewCartUseCase,
		NewCatalogUseCase,
	),
)

type authParams struct {
	fx.In

	Users  repository.UserRepository
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
	Config *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Tokens, p.Config.AdminSecret)
}

func newNotificationUseCase(notifications repository.NotificationRepository, logger *slog.Logger) *NotificationUseCase {
	return NewNotificationUseCase(notifications, logger)
}

func newOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, notifier Notifier) *OrderUseCase {
	return NewOrderUseCase(orders, products, notifier)
}

func newPaymentUseCase(payments repository.PaymentRepository, orders repository.OrderRepository, gw gateway.Gateway, notifier Notifier) *PaymentUseCase {
	return NewPaymentUseCase(payments, orders, gw, notifier)
}
