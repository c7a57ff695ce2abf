package service

import (
	"errors"
	"sync"
)

// Status состояние набора операций сервиса
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// ErrBusy: операция начата, пока предыдущая ещё грузится.
// Состояние при этом не меняется.
var ErrBusy = errors.New("operation already in progress")

// machine цикл Idle → Loading → {Ready, Failed}, общий для сервисов.
// В Idle бывает только до первой операции: Ready и Failed для begin равнозначны Idle.
type machine struct {
	mu      sync.RWMutex
	status  Status
	lastErr error
}

// begin переводит в Loading, mu не должен быть захвачен
func (m *machine) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusLoading {
		return ErrBusy
	}
	m.status = StatusLoading
	m.lastErr = nil
	return nil
}

// failLocked сохраняет данные владельца и запоминает err
func (m *machine) failLocked(err error) {
	m.status = StatusFailed
	m.lastErr = err
}

func (m *machine) fail(err error) {
	m.mu.Lock()
	m.failLocked(err)
	m.mu.Unlock()
}

func (m *machine) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.status == "" {
		return StatusIdle
	}
	return m.status
}

// LastError ошибка последней операции, nil после успеха
func (m *machine) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Collection упорядоченный список сущностей с ключом id
type Collection[T any] struct {
	machine
	items []T
	id    func(T) string
}

func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Items возвращает копию в порядке добавления
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get ищет сущность по id
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
	c.status = StatusReady
}

// add добавляет подтверждённую сущность, запись с тем же id заменяется на месте
func (c *Collection[T]) add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = StatusReady
	key := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == key {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

func (c *Collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = StatusReady
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
