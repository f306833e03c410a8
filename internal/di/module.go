package di

import (
	"go.uber.org/fx"

	"github.com/sellerdesk/merchanthub/internal/adapter/payments"
	"github.com/sellerdesk/merchanthub/internal/app"
	"github.com/sellerdesk/merchanthub/internal/config"
	"github.com/sellerdesk/merchanthub/internal/logger"
	"github.com/sellerdesk/merchanthub/internal/pkg/auth"
	"github.com/sellerdesk/merchanthub/internal/server/http/handlers"
	"github.com/sellerdesk/merchanthub/internal/server/http/router"
	"github.com/sellerdesk/merchanthub/internal/storage/postgres"
	"github.com/sellerdesk/merchanthub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payments.Module,
		usecase.Module,
		fx.Provide(func(client payments.Client) usecase.PaymentsGateway { return client }),
		fx.Provide(func(f *app.MerchantFacade) handlers.MerchantFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
