// Package ratelimit ограничивает число запросов с одного ключа (IP клиента) за окно времени.
//
// Memory хранит счётчики в памяти процесса, Window считает попадания
// в общем хранилище и подходит для нескольких экземпляров сервиса.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter решает, можно ли пропустить очередной запрос с ключом key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type visitor struct {
	count int
	start time.Time
}

// Memory считает запросы каждого ключа в фиксированном окне: не больше requests
// за window, отсчёт окна начинается с первого запроса.
type Memory struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	requests int
	window   time.Duration
	now      func() time.Time
}

// NewMemory создает Memory.
func NewMemory(requests int, window time.Duration) *Memory {
	return &Memory{
		visitors: make(map[string]*visitor),
		requests: requests,
		window:   window,
		now:      time.Now,
	}
}

// Allow реализует Limiter.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.visitors[key]
	if !ok || now.Sub(v.start) >= m.window {
		v = &visitor{start: now}
		m.visitors[key] = v
	}
	v.count++
	return v.count <= m.requests, nil
}

// Run периодически удаляет ключи с закончившимся окном. Завершается по ctx.
func (m *Memory) Run(ctx context.Context) {
	ticker := time.NewTicker(m.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *Memory) cleanup() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, v := range m.visitors {
		if now.Sub(v.start) >= m.window {
			delete(m.visitors, key)
		}
	}
}

// Counter увеличивает счётчик в окне фиксированной длины.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Window - лимитер с фиксированным окном поверх общего счётчика.
type Window struct {
	counter  Counter
	requests int64
	window   time.Duration
	prefix   string
}

// NewWindow создает Window.
func NewWindow(counter Counter, requests int, window time.Duration) *Window {
	return &Window{
		counter:  counter,
		requests: int64(requests),
		window:   window,
		prefix:   "ratelimit:",
	}
}

// Allow реализует Limiter.
func (w *Window) Allow(ctx context.Context, key string) (bool, error) {
	const op = "ratelimit.Window.Allow"

	n, err := w.counter.Hit(ctx, w.prefix+key, w.window)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n <= w.requests, nil
}
