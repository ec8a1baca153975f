package config

import "go.uber.org/fx"

// Module provides the loaded storefront configuration to fx graphs.
var Module = fx.Provide(Load)
