package router

import "go.uber.org/fx"

// Module provides the storefront gin engine to the fx graph.
var Module = fx.Provide(Setup)
