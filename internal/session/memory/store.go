// Package memory: in-memory хранилище сессий: LRU по ёмкости плюс скользящий TTL.
package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/orderlines/pkg/metrics"
)

type entry[S any] struct {
	id        string
	session   S
	expiresAt time.Time
}

// Store — потокобезопасное LRU-хранилище с TTL. Значения не копируются:
// сессия обычно указатель со своей синхронизацией.
type Store[S any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// Option — настройка хранилища.
type Option[S any] func(*Store[S])

// WithClock подменяет источник времени (тесты TTL без sleep).
func WithClock[S any](now func() time.Time) Option[S] {
	return func(s *Store[S]) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore — capacity <= 0 трактуется как 1, ttl <= 0 отключает истечение.
func NewStore[S any](capacity int, ttl time.Duration, opts ...Option[S]) *Store[S] {
	if capacity <= 0 {
		capacity = 1
	}
	s := &Store[S]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get ищет сессию по id. Попадание продлевает TTL и делает сессию самой свежей.
func (s *Store[S]) Get(_ context.Context, id string) (S, bool) {
	var zero S
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[id]
	if !ok {
		metrics.SessionOps.WithLabelValues("miss").Inc()
		return zero, false
	}
	ent := elem.Value.(*entry[S])
	if s.isExpired(ent, now) {
		metrics.SessionOps.WithLabelValues("expired").Inc()
		s.removeElement(elem)
		return zero, false
	}

	s.ll.MoveToFront(elem)
	ent.expiresAt = s.expiryFrom(now)

	metrics.SessionOps.WithLabelValues("hit").Inc()
	return ent.session, true
}

// Put сохраняет или заменяет сессию; при переполнении вытесняется самая старая.
func (s *Store[S]) Put(_ context.Context, id string, session S) error {
	if id == "" {
		return nil
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[id]; ok {
		ent := elem.Value.(*entry[S])
		ent.session = session
		ent.expiresAt = s.expiryFrom(now)
		s.ll.MoveToFront(elem)
		return nil
	}

	s.pruneExpiredFromBack(now)

	s.index[id] = s.ll.PushFront(&entry[S]{
		id:        id,
		session:   session,
		expiresAt: s.expiryFrom(now),
	})
	metrics.SessionsActive.Set(float64(len(s.index)))

	if s.ll.Len() > s.capacity {
		s.evictLRU()
	}
	return nil
}

// Len возвращает число сессий (включая ещё не убранные истёкшие).
func (s *Store[S]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *Store[S]) evictLRU() {
	if back := s.ll.Back(); back != nil {
		s.removeElement(back)
		metrics.SessionOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement убирает элемент из списка и индекса и обновляет gauge.
func (s *Store[S]) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry[S])
	delete(s.index, ent.id)
	s.ll.Remove(elem)
	metrics.SessionsActive.Set(float64(len(s.index)))
}

func (s *Store[S]) isExpired(ent *entry[S], now time.Time) bool {
	return s.ttl > 0 && now.After(ent.expiresAt)
}

func (s *Store[S]) expiryFrom(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// pruneExpiredFromBack — хвост списка самый старый; чистим до первой живой сессии.
func (s *Store[S]) pruneExpiredFromBack(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for back := s.ll.Back(); back != nil; back = s.ll.Back() {
		if !s.isExpired(back.Value.(*entry[S]), now) {
			return
		}
		s.removeElement(back)
		metrics.SessionOps.WithLabelValues("expired").Inc()
	}
}
