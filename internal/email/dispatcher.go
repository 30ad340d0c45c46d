package email

import (
	"errors"
	"log/slog"
	"sync"

	"kirieshka/infrastructure"
)

// Message is one queued email. Code is kept alongside the rendered body so a
// failed delivery can still log it server-side.
type Message struct {
	To      string
	Subject string
	Body    string
	Code    string
}

// Deliverer is the transport behind the dispatcher.
type Deliverer interface {
	Configured() bool
	Send(to, subject, body string) error
}

// Dispatcher drains a buffered queue on a single background worker. Enqueue
// never blocks the caller: delivery is best-effort and strictly advisory, a
// handler response may be written before the email goes out.
type Dispatcher struct {
	sender Deliverer
	queue  chan Message
	wg     sync.WaitGroup
	once   sync.Once
}

const queueSize = 64

func NewDispatcher(sender Deliverer) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, queueSize),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) Configured() bool {
	return d.sender.Configured()
}

// Enqueue submits a message for background delivery. A full queue degrades to
// logging the code, same as a failed send.
func (d *Dispatcher) Enqueue(m Message) {
	select {
	case d.queue <- m:
	default:
		slog.Warn("email queue full, dropping message", "to", m.To)
		logCode(m)
	}
}

// Close stops accepting messages and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for m := range d.queue {
		err := d.sender.Send(m.To, m.Subject, m.Body)
		if err == nil {
			slog.Info("email sent", "to", m.To, "subject", m.Subject)
			continue
		}
		if errors.Is(err, infrastructure.ErrEmailNotConfigured) {
			slog.Info("[EMAIL NOT CONFIGURED] logging code instead", "to", m.To, "code", m.Code)
			continue
		}
		slog.Error("email delivery failed", "to", m.To, "error", err)
		logCode(m)
	}
}

func logCode(m Message) {
	if m.Code != "" {
		slog.Info("[FALLBACK] code available server-side", "to", m.To, "code", m.Code)
	}
}
