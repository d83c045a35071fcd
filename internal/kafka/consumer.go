package kafka

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/pkg/metrics"
	"github.com/Gunvolt24/orderlines/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет порту приложения.
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моком в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — разбор, валидация и сохранение одного сообщения.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — приём строк заказов из Kafka с ручным коммитом (at-least-once).
type Consumer struct {
	reader         reader
	saver          messageSaver
	log            ports.Logger
	poison         func(error) bool
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// Option — настройка Consumer.
type Option func(*Consumer)

// WithPoisonClassifier — какие ошибки считать «ядовитыми» (коммит без повтора).
func WithPoisonClassifier(f func(error) bool) Option {
	return func(c *Consumer) {
		if f != nil {
			c.poison = f
		}
	}
}

// NewConsumer строит Consumer поверх kafka.NewReader.
func NewConsumer(cfg *ConsumerConfig, saver messageSaver, log ports.Logger, opts ...Option) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, saver, log, opts...)
}

func newConsumer(r reader, cfg *ConsumerConfig, saver messageSaver, log ports.Logger, opts ...Option) *Consumer {
	d := cfg.withDefaults()
	c := &Consumer{
		reader:         r,
		saver:          saver,
		log:            log,
		poison:         IsInvalidMessage,
		processTimeout: d.ProcessTimeout,
		retryInitial:   d.RetryInitial,
		retryMax:       d.RetryMax,
		// разносит повторы разных экземпляров во времени
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsInvalidMessage сообщает, что сообщение не станет валидным при повторе.
func IsInvalidMessage(err error) bool {
	return errors.Is(err, validate.ErrInvalidJSON) || errors.Is(err, validate.ErrInvalidOrderLine)
}

// Run — основной цикл:
//  1. FetchMessage без авто-коммита; ошибки брокера ждут с экспоненциальным backoff;
//  2. обработка сообщения до успеха или «ядовитой» ошибки, затем коммит;
//  3. временная ошибка повторяется на том же сообщении, оффсет не двигается.
//
// Возвращает ctx.Err() при остановке.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.process(ctx, rc.Topic, &msg); err != nil {
			return err
		}
		c.commitSafely(ctx, &msg)
	}
}

// Close закрывает reader (однократно).
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
