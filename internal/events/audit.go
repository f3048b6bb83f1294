// Package events публикует события аудита административных операций.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/license-auth/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// ErrClosed возвращается при публикации после Close.
var ErrClosed = errors.New("publisher closed")

// AMQP публикует события в topic-обменник, ключ маршрутизации равен действию.
type AMQP struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *slog.Logger
}

// NewAMQP подключается к брокеру и объявляет обменник.
func NewAMQP(url, exchange string, retries int, delay time.Duration, log *slog.Logger) (*AMQP, error) {
	const op = "events.NewAMQP"

	conn, err := rabbitmq.Connect(url, retries, delay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupExchange(conn, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("audit publisher connected", slog.String("exchange", exchange))
	return &AMQP{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// Publish реализует admin.Publisher. Канал amqp не потокобезопасен, поэтому публикация под мьютексом.
func (p *AMQP) Publish(ctx context.Context, event models.AuditEvent) error {
	const op = "events.AMQP.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}
	if err := rabbitmq.PublishMessage(p.ch, p.exchange, event.Action, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает канал и соединение. Повторный вызов ничего не делает.
func (p *AMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}

	chErr := p.ch.Close()
	connErr := p.conn.Close()
	p.ch, p.conn = nil, nil
	return errors.Join(chErr, connErr)
}

// Noop пишет событие в лог вместо брокера. Используется, когда брокер не настроен.
type Noop struct {
	Log *slog.Logger
}

// Publish реализует admin.Publisher.
func (n Noop) Publish(_ context.Context, event models.AuditEvent) error {
	if n.Log != nil {
		n.Log.Debug("audit event", slog.String("action", event.Action), slog.String("account_id", event.AccountID))
	}
	return nil
}
