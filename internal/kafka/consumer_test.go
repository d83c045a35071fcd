package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/orderlines/internal/kafka/mocks"
	"github.com/Gunvolt24/orderlines/pkg/ctxmeta"
	"github.com/Gunvolt24/orderlines/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "orderlines", GroupID: "g1", Brokers: []string{"b:9092"}}

// runAsync запускает Consumer.Run в отдельной горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, c *Consumer) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func newTestConsumer(r reader, s messageSaver) *Consumer {
	c := newConsumer(r, &ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   5 * time.Millisecond,
		RetryMax:       10 * time.Millisecond,
	}, s, nopLogger{})
	c.jitterRand = rand.New(rand.NewSource(1))
	return c
}

// blockUntilCancel: второй FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) *gomock.Call {
	return r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

func waitCanceled(t *testing.T, errCh <-chan error, cancel context.CancelFunc) {
	t.Helper()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(300 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Успешная обработка + коммит
func TestRun_OK_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	gomock.InOrder(
		r.EXPECT().FetchMessage(gomock.Any()).
			Return(kafka.Message{Topic: "orderlines", Offset: 1, Value: []byte("ok")}, nil),
		s.EXPECT().SaveFromMessage(gomock.Any(), []byte("ok")).
			DoAndReturn(func(ctx context.Context, _ []byte) error {
				// у каждого сообщения свой id для логов
				if rid, _ := ctxmeta.RequestIDFromContext(ctx); rid != "kafka:orderlines/0/1" {
					return fmt.Errorf("unexpected request id %q", rid)
				}
				return nil
			}),
		r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
		blockUntilCancel(r),
	)

	ctx, cancel := context.WithCancel(context.Background())
	waitCanceled(t, runAsync(ctx, newTestConsumer(r, s)), cancel)
}

// Невалидное сообщение => коммитим без повтора
func TestRun_InvalidMessage_Commits(t *testing.T) {
	for _, poison := range []error{validate.ErrInvalidOrderLine, validate.ErrInvalidJSON} {
		t.Run(poison.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			s := mocks.NewMockmessageSaver(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			gomock.InOrder(
				r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 7, Value: []byte("bad")}, nil),
				s.EXPECT().SaveFromMessage(gomock.Any(), []byte("bad")).Return(fmt.Errorf("wrapped: %w", poison)),
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
				blockUntilCancel(r),
			)

			ctx, cancel := context.WithCancel(context.Background())
			waitCanceled(t, runAsync(ctx, newTestConsumer(r, s)), cancel)
		})
	}
}

// Временная ошибка => повтор того же сообщения, коммит только после успеха
func TestRun_TemporaryFailure_RetriesSameMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	gomock.InOrder(
		r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 2, Value: []byte("x")}, nil),
		s.EXPECT().SaveFromMessage(gomock.Any(), []byte("x")).Return(errors.New("db down")),
		s.EXPECT().SaveFromMessage(gomock.Any(), []byte("x")).Return(errors.New("db down")),
		s.EXPECT().SaveFromMessage(gomock.Any(), []byte("x")).Return(nil),
		r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
		blockUntilCancel(r),
	)

	ctx, cancel := context.WithCancel(context.Background())
	waitCanceled(t, runAsync(ctx, newTestConsumer(r, s)), cancel)
}

// Остановка во время повторов: без коммита
func TestRun_TemporaryFailure_StopWithoutCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 2, Value: []byte("x")}, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), []byte("x")).Return(errors.New("db down")).AnyTimes()
	// CommitMessages не ожидается: вызов провалит тест

	ctx, cancel := context.WithCancel(context.Background())
	waitCanceled(t, runAsync(ctx, newTestConsumer(r, s)), cancel)
}

// Ошибки FetchMessage ретраятся; по отмене контекста: корректный выход
func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("broker error")).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := newTestConsumer(r, s).Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// CommitMessages вернул ошибку: предупреждение, цикл живёт дальше
func TestRun_CommitWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	gomock.InOrder(
		r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 3, Value: []byte("ok")}, nil),
		s.EXPECT().SaveFromMessage(gomock.Any(), []byte("ok")).Return(nil),
		r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary")),
		blockUntilCancel(r),
	)

	ctx, cancel := context.WithCancel(context.Background())
	waitCanceled(t, runAsync(ctx, newTestConsumer(r, s)), cancel)
}

func TestWithPoisonClassifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	custom := errors.New("custom poison")
	c := newConsumer(mocks.NewMockreader(ctrl), &ConsumerConfig{}, mocks.NewMockmessageSaver(ctrl), nopLogger{},
		WithPoisonClassifier(func(err error) bool { return errors.Is(err, custom) }))

	if !c.poison(custom) || c.poison(validate.ErrInvalidJSON) {
		t.Fatalf("custom classifier not applied")
	}
}

func TestBackoffAndJitter(t *testing.T) {
	c := newTestConsumer(nil, nil)

	if got := c.nextBackoff(4 * time.Millisecond); got != 8*time.Millisecond {
		t.Fatalf("nextBackoff: got %s", got)
	}
	if got := c.nextBackoff(8 * time.Millisecond); got != 10*time.Millisecond {
		t.Fatalf("nextBackoff must cap at retryMax, got %s", got)
	}
	for range 100 {
		if j := c.withJitterEqual(10 * time.Millisecond); j < 5*time.Millisecond || j > 10*time.Millisecond {
			t.Fatalf("jitter out of range: %s", j)
		}
	}
	if c.withJitterEqual(0) != 0 {
		t.Fatalf("zero delay must stay zero")
	}
}

// Close прокидывает вызов в reader.Close() один раз
func TestClose_DelegatesToReaderOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, mocks.NewMockmessageSaver(ctrl))
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
	_ = c.Close()
}
