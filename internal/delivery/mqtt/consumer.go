// Package mqtt consumes the messages the child device publishes on its own initiative:
// geofence crossings, ping acknowledgements and check-in answers.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"guardian/internal/delivery"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	"guardian/internal/errors"
	infra "guardian/internal/infra/mqtt"
	"guardian/internal/usecase"
)

// ConsumerParams holds dependencies for the device consumer, injected by Fx
type ConsumerParams struct {
	fx.In

	Logger     *slog.Logger
	Transport  infra.Transport
	Topics     infra.Topics
	MonitorUC  usecase.SafeZoneMonitorUsecase
	ParentalUC usecase.ParentalUsecase
}

type consumer struct {
	logger     *slog.Logger
	transport  infra.Transport
	topics     infra.Topics
	monitorUC  usecase.SafeZoneMonitorUsecase
	parentalUC usecase.ParentalUsecase
}

// NewConsumer creates the device message consumer
func NewConsumer(params ConsumerParams) delivery.Delivery {
	return &consumer{
		logger:     params.Logger,
		transport:  params.Transport,
		topics:     params.Topics,
		monitorUC:  params.MonitorUC,
		parentalUC: params.ParentalUC,
	}
}

// Serve subscribes to the device topics and blocks until ctx is done.
func (c *consumer) Serve(ctx context.Context) error {
	routes := map[string]func(context.Context, []byte) error{
		c.topics.GeofenceEvents(): c.handleGeofenceEvent,
		c.topics.PingAcks():       c.handlePingAck,
		c.topics.CheckInReplies(): c.handleCheckInReply,
	}

	for topic, handle := range routes {
		if err := c.transport.Subscribe(topic, c.dispatch(ctx, topic, handle)); err != nil {
			return errors.Wrapf(err, "subscribe %s", topic)
		}
	}
	c.logger.Info("Listening for device messages", slog.Int("topicCount", len(routes)))

	<-ctx.Done()

	for topic := range routes {
		if err := c.transport.Unsubscribe(topic); err != nil {
			c.logger.Warn("Failed to unsubscribe", slog.String("topic", topic), slog.Any("error", err))
		}
	}

	return nil
}

// dispatch runs handle with a logger tagged by topic. Failures are logged only; the
// device does not wait for an answer.
func (c *consumer) dispatch(ctx context.Context, topic string, handle func(context.Context, []byte) error) infra.MessageHandler {
	return func(_ string, payload []byte) {
		requestID := uuid.NewString()
		logger := c.logger.With(slog.String("topic", topic), slog.String("request_id", requestID))
		msgCtx := deliverycontext.WithRequestID(ctx, requestID)
		msgCtx = deliverycontext.WithLogger(msgCtx, logger)

		if err := handle(msgCtx, payload); err != nil {
			logger.Warn("Failed to handle device message", slog.Any("error", err))
		}
	}
}

func (c *consumer) handleGeofenceEvent(ctx context.Context, payload []byte) error {
	var transition entity.GeofenceTransition
	if err := json.Unmarshal(payload, &transition); err != nil {
		return errors.Wrap(err, "decode geofence event")
	}

	return c.monitorUC.HandleGeofenceEvent(ctx, transition)
}

func (c *consumer) handlePingAck(ctx context.Context, payload []byte) error {
	var ack infra.PingAck
	if err := json.Unmarshal(payload, &ack); err != nil {
		return errors.Wrap(err, "decode ping ack")
	}
	if ack.PingID == "" {
		return errors.New("ping ack without ping id")
	}

	_, err := c.parentalUC.AcknowledgePing(ctx, ack.PingID, ack.Location)

	return err
}

func (c *consumer) handleCheckInReply(ctx context.Context, payload []byte) error {
	var reply infra.CheckInReply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return errors.Wrap(err, "decode check-in reply")
	}
	if reply.CheckInID == "" {
		return errors.New("check-in reply without check-in id")
	}

	request, err := c.parentalUC.CompleteCheckIn(ctx, reply.CheckInID, reply.Location)
	if err != nil {
		return err
	}

	return c.parentalUC.AddCheckInToDashboard(ctx, request.DashboardEntry())
}

// Module provides the device consumer
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewConsumer, fx.ResultTags(`group:"deliveries"`)),
	),
)
