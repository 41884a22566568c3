package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Message is one queued email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Dispatcher hands emails off to a background worker so booking responses
// never wait on the mail provider. Delivery failures are logged, not
// propagated: the engine's contract is "booking persisted", not
// "notification delivered".
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if d.mailer == nil {
			log.Warn().Str("to", msg.To).Msg("mailer not configured, dropping email")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.mailer.Send(ctx, msg.To, msg.Subject, msg.HTML); err != nil {
			log.Error().Err(err).Str("to", msg.To).Msg("email delivery failed")
		}
		cancel()
	}
}

// Dispatch enqueues a message. A full queue drops the email rather than
// blocking the request path.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		log.Warn().Str("to", msg.To).Msg("notify queue full, dropping email")
	}
}
