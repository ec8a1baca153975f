package gateway

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module exposes the gateway implementation to the fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
}

func newGateway(p gatewayParams) Gateway {
	return NewSimulated(SimulatedOptions{
		MinDelay: p.Config.GatewayMinDelay,
		MaxDelay: p.Config.GatewayMaxDelay,
	})
}
