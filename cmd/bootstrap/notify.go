package bootstrap

import (
	"mountworks/internal/infra/notify"
	"mountworks/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewConsoleEmailSender,
			fx.As(new(commands.EmailSender)),
		),
		fx.Annotate(
			notify.NewConsoleSMSSender,
			fx.As(new(commands.SMSSender)),
		),
	),
)
