package bootstrap

import (
	"mountworks/internal/infra/payment"
	"mountworks/internal/pkg/config"
	"mountworks/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) (*payment.OmiseGateway, error) {
	return payment.NewOmiseGateway(cfg.Payment)
}
