package components

import (
	"savoria-api/internal/handler"
	"savoria-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMenuHandler,
		api.NewOfferHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
