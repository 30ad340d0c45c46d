package email

import (
	"github.com/google/wire"

	"kirieshka/config"
)

// ProvideSender is a Wire provider function that creates the SMTP Sender.
func ProvideSender(cfg *config.Config) *Sender {
	return NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
}

// ProvideDispatcher is a Wire provider function that creates the Dispatcher.
func ProvideDispatcher(sender *Sender) *Dispatcher {
	return NewDispatcher(sender)
}

var Set = wire.NewSet(ProvideSender, ProvideDispatcher)
