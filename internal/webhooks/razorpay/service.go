package razorpaywebhook

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
)

// HandlerFunc reacts to one verified webhook event.
type HandlerFunc func(ctx context.Context, event *razorpay.WebhookEvent) error

// Service routes verified events to the handlers registered for their type.
type Service struct {
	mu       sync.RWMutex
	handlers map[razorpay.EventType][]HandlerFunc
	fallback []HandlerFunc
	logg     *logger.Logger
}

func NewService(logg *logger.Logger) *Service {
	return &Service{
		handlers: make(map[razorpay.EventType][]HandlerFunc),
		logg:     logg,
	}
}

// On registers fn for the given event type. Handlers run in registration order.
func (s *Service) On(eventType razorpay.EventType, fn HandlerFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[eventType] = append(s.handlers[eventType], fn)
}

// OnAny registers fn for every event, including types with no specific handler.
func (s *Service) OnAny(fn HandlerFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = append(s.fallback, fn)
}

// HandleEvent runs every matching handler. All handlers run even if one
// fails; the failures are combined into the returned error.
func (s *Service) HandleEvent(ctx context.Context, event *razorpay.WebhookEvent) error {
	if event == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "razorpay event required")
	}

	s.mu.RLock()
	handlers := append(append([]HandlerFunc(nil), s.handlers[event.Event]...), s.fallback...)
	s.mu.RUnlock()

	if len(handlers) == 0 {
		if s.logg != nil {
			ctx = s.logg.WithField(ctx, "event_type", event.Event.String())
			s.logg.Debug(ctx, "razorpay event ignored")
		}
		return nil
	}

	var err error
	for i, fn := range handlers {
		if herr := fn(ctx, event); herr != nil {
			err = multierr.Append(err, fmt.Errorf("handler %d for %s: %w", i, event.Event, herr))
		}
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "handle razorpay event")
	}
	return nil
}
