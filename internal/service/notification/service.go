package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/webhook"
)

// Config holds dispatcher tuning.
type Config struct {
	WorkerCount int           // default: 2
	QueueSize   int           // default: 100
	Timeout     time.Duration // default: 10 seconds, per delivery
}

type delivery struct {
	kind  notification.Kind
	url   string
	embed webhook.Embed
}

type service struct {
	client *webhook.Client
	urls   map[notification.Kind]string
	config Config
	now    func() time.Time

	queue    chan delivery
	stopCh   chan struct{}
	workers  sync.WaitGroup
	overflow sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewWebhookNotifier starts background workers that post events to the
// configured webhook URLs. A kind with an empty URL is dropped.
func NewWebhookNotifier(webhooks config.WebhookConfig, cfg Config) notification.Notifier {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 100
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = webhooks.Timeout
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	s := &service{
		client: webhook.NewClient(cfg.Timeout),
		urls: map[notification.Kind]string{
			notification.KindCheckIn:     webhooks.CheckInURL,
			notification.KindCheckOut:    webhooks.CheckOutURL,
			notification.KindLeave:       webhooks.LeaveURL,
			notification.KindResignation: webhooks.ResignationURL,
		},
		config: cfg,
		now:    time.Now,
		queue:  make(chan delivery, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.workers.Add(1)
		go s.worker()
	}
	return s
}

func (s *service) worker() {
	defer s.workers.Done()

	for {
		select {
		case d := <-s.queue:
			s.deliver(d)
		case <-s.stopCh:
			for {
				select {
				case d := <-s.queue:
					s.deliver(d)
				default:
					return
				}
			}
		}
	}
}

func (s *service) deliver(d delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	if err := s.client.Send(ctx, d.url, d.embed); err != nil {
		slog.Error("Webhook delivery failed", "kind", d.kind, "title", d.embed.Title, "error", err)
	}
}

func (s *service) enqueue(kind notification.Kind, embed webhook.Embed) {
	url := s.urls[kind]
	if url == "" {
		return
	}
	embed.Timestamp = s.now().UTC().Format(time.RFC3339)
	d := delivery{kind: kind, url: url, embed: embed}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		slog.Warn("Notifier closed, dropping event", "kind", kind)
		return
	}

	select {
	case s.queue <- d:
	default:
		// Queue full, deliver on its own goroutine
		s.overflow.Add(1)
		go func() {
			defer s.overflow.Done()
			s.deliver(d)
		}()
	}
}

// Close stops accepting events and waits for queued and in-flight deliveries.
func (s *service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopCh)
	s.workers.Wait()
	s.overflow.Wait()
}

func (s *service) NotifyCheckIn(e notification.CheckInEvent) {
	s.enqueue(notification.KindCheckIn, checkInEmbed(e))
}

func (s *service) NotifyCheckOut(e notification.CheckOutEvent) {
	s.enqueue(notification.KindCheckOut, checkOutEmbed(e))
}

func (s *service) NotifyLeaveStatus(e notification.LeaveStatusEvent) {
	s.enqueue(notification.KindLeave, leaveEmbed(e))
}

func (s *service) NotifyResignationStatus(e notification.ResignationStatusEvent) {
	s.enqueue(notification.KindResignation, resignationEmbed(e))
}
