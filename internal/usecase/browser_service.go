package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
)

// BrowserSession — обозреватель одного посетителя. Переходы состояния
// сериализуются мьютексом, загрузка идёт без блокировки.
type BrowserSession struct {
	mu sync.Mutex
	b  *browser.Browser
}

// BrowserService — веб-сессии обозревателя поверх удалённого сервиса строк.
type BrowserService struct {
	sessions ports.SessionStore[*BrowserSession]
	src      ports.OrderLineSource
	log      ports.Logger
	opts     []browser.Option
}

// NewBrowserService — DI-конструктор; opts применяются к каждой новой сессии.
func NewBrowserService(
	sessions ports.SessionStore[*BrowserSession],
	src ports.OrderLineSource,
	log ports.Logger,
	opts ...browser.Option,
) *BrowserService {
	return &BrowserService{
		sessions: sessions,
		src:      src,
		log:      log,
		opts:     opts,
	}
}

// View — текущее представление; новая сессия монтируется (первая загрузка).
func (s *BrowserService) View(ctx context.Context, sessionID string) (browser.View, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return browser.View{}, err
	}
	return sess.view(), nil
}

// Filter применяет фильтр по количеству без загрузки.
func (s *BrowserService) Filter(ctx context.Context, sessionID, text string) (browser.View, error) {
	return s.transition(ctx, sessionID, func(b *browser.Browser) (browser.Request, bool) {
		b.ApplyQuantityFilter(text)
		return browser.Request{}, false
	})
}

// SelectPackage меняет тип упаковки; загрузка идёт только при изменении.
func (s *BrowserService) SelectPackage(ctx context.Context, sessionID string, p domain.PackageType) (browser.View, error) {
	return s.transition(ctx, sessionID, func(b *browser.Browser) (browser.Request, bool) {
		return b.SelectPackageType(p)
	})
}

// ChangePage переходит на страницу target как есть, без ограничения.
func (s *BrowserService) ChangePage(ctx context.Context, sessionID string, target int) (browser.View, error) {
	return s.transition(ctx, sessionID, func(b *browser.Browser) (browser.Request, bool) {
		return b.ChangePage(target)
	})
}

// Reload повторяет загрузку с текущими параметрами.
func (s *BrowserService) Reload(ctx context.Context, sessionID string) (browser.View, error) {
	return s.transition(ctx, sessionID, func(b *browser.Browser) (browser.Request, bool) {
		return b.Reload(), true
	})
}

// transition — переход под мьютексом, загрузка вне его, применение результата
// снова под мьютексом. Параллельные запросы одной сессии разрешаются номером запроса.
func (s *BrowserService) transition(
	ctx context.Context,
	sessionID string,
	step func(b *browser.Browser) (browser.Request, bool),
) (browser.View, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return browser.View{}, err
	}

	sess.mu.Lock()
	req, fetch := step(sess.b)
	sess.mu.Unlock()

	if fetch {
		s.run(ctx, sess, req)
	}
	return sess.view(), nil
}

// session возвращает существующую сессию или новую, смонтированная с первой загрузкой.
func (s *BrowserService) session(ctx context.Context, sessionID string) (*BrowserSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("empty session id")
	}
	if sess, ok := s.sessions.Get(ctx, sessionID); ok {
		return sess, nil
	}

	sess := &BrowserSession{b: browser.New(s.opts...)}
	req := sess.b.Mount()
	if err := s.sessions.Put(ctx, sessionID, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	s.log.Infof(ctx, "browser session created")

	s.run(ctx, sess, req)
	return sess, nil
}

func (s *BrowserService) run(ctx context.Context, sess *BrowserSession, req browser.Request) {
	res := browser.Fetch(ctx, s.src, s.log, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	browser.Apply(ctx, sess.b, s.log, res)
}

func (sess *BrowserSession) view() browser.View {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.b.View()
}
