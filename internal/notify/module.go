package notify

import (
	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/config"
)

// Module exposes the mail sender implementation to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
}

func newSender(p senderParams) (Sender, error) {
	return NewSMTPSender(SMTPConfig{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		Username: p.Config.SMTPUsername,
		Password: p.Config.SMTPPassword,
		From:     p.Config.EmailFrom,
	})
}
