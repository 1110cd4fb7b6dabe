package services

import (
	"context"

	"github.com/justsurfingit/job-board/internal/events"
	log "github.com/sirupsen/logrus"
)

// publish sends e after the write it describes has committed. A broker
// failure is logged and never reaches the caller. The write already
// happened, so a client hanging up must not drop the event.
func publish(ctx context.Context, pub events.Publisher, e events.Event) {
	if err := pub.Publish(context.WithoutCancel(ctx), e); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"event_id":   e.ID,
			"event_type": e.Type,
		}).Warn("failed to publish event")
	}
}
