package message

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/weegigs/wee-webapp-go/counter"
	"github.com/weegigs/wee-webapp-go/we"
)

type ServiceOption func(service *Service)

func WithGreeting(greeting Greeting) ServiceOption {
	return func(service *Service) {
		service.greeting = greeting
	}
}

func WithClock(clock we.Clock) ServiceOption {
	return func(service *Service) {
		service.clock = clock
	}
}

func NewService(c counter.Counter, options ...ServiceOption) *Service {
	service := &Service{counter: c}
	for _, option := range options {
		option(service)
	}

	if service.greeting == "" {
		service.greeting = DefaultGreeting
	}

	if service.clock == nil {
		service.clock = we.SystemClock
	}

	return service
}

type Service struct {
	counter  counter.Counter
	clock    we.Clock
	greeting Greeting
}

// Handle advances the counter once per call. A failure after the increment does not
// roll the counter back.
func (s *Service) Handle(ctx context.Context) (Message, error) {
	ctx, span := otel.Tracer(we.TracerName).Start(ctx, "handle message")
	defer span.End()

	value, err := s.counter.Up(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "increment failed")
		return Message{}, we.Internal(errors.Wrap(err, "failed to increment counter"))
	}
	span.SetAttributes(attribute.Int64("counter", int64(value)))

	timestamp, err := we.TimestampFromTime(s.clock.Now())
	if err != nil {
		span.SetStatus(codes.Error, "timestamp failed")
		return Message{}, err
	}

	return Message{
		Message:   string(s.greeting),
		Counter:   value,
		Timestamp: timestamp,
	}, nil
}

func (s *Service) Greeting() Greeting {
	return s.greeting
}
