package service

import (
	"context"
	"encoding/json"
	"time"

	"restobot-be/internal/constant"
	"restobot-be/internal/pkg/logger"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/events"
	pktNats "restobot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// eventEnvelope is the wire form shared by the in-process bus and NATS.
type eventEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type IEventService interface {
	bot.EventSink
}

type eventService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher // may be nil when NATS is unavailable
	log       logger.ILogger
}

func NewEventService(pubSub *gochannel.GoChannel, topicName string, natsPub *pktNats.Publisher, log logger.ILogger) IEventService {
	return &eventService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		log:       log,
	}
}

// Emit is best-effort. A flow turn never fails because the bus is down.
func (s *eventService) Emit(ctx context.Context, eventType string, payload map[string]interface{}) {
	evt := events.New(eventType, payload)

	envelope := eventEnvelope{
		Type:       evt.EventType(),
		Payload:    evt.Payload(),
		OccurredAt: evt.Timestamp(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		s.log.Error(constant.ModuleEventService, "failed to marshal event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.log.Error(constant.ModuleEventService, "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, evt); err != nil {
			s.log.Warn(constant.ModuleEventService, "failed to publish event to NATS", map[string]interface{}{
				"event_type": eventType,
				"error":      err.Error(),
			})
		}
	}
}
