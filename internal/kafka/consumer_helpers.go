package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/orderlines/pkg/ctxmeta"
	"github.com/Gunvolt24/orderlines/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

type outcome int

const (
	outcomeDone  outcome = iota // сохранено
	outcomeSkip                 // невалидно, коммитим без сохранения
	outcomeRetry                // временная ошибка
)

// process повторяет обработку одного сообщения, пока она не завершится
// успехом или пропуском. Ошибка только при отмене ctx.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) error {
	ctx = ctxmeta.WithRequestID(ctx, messageID(msg))

	retry := c.retryInitial
	for attempt := 1; ; attempt++ {
		if c.handleMessage(ctx, topic, msg, attempt) != outcomeRetry {
			return nil
		}
		if !c.sleepWithBackoff(ctx, c.withJitterEqual(retry)) {
			return ctx.Err()
		}
		retry = c.nextBackoff(retry)
	}
}

// handleMessage — одна попытка с таймаутом processTimeout.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message, attempt int) outcome {
	attemptCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.saver.SaveFromMessage(attemptCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeDone
	case c.poison(err):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid message offset=%d: %v (skipped)", msg.Offset, err)
		return outcomeSkip
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d attempt=%d: %v (will retry without commit)", msg.Offset, attempt, err)
		return outcomeRetry
	}
}

// commitSafely — ошибка коммита только логируется: сообщение придёт повторно, upsert идемпотентен.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

func messageID(msg *kafka.Message) string {
	return fmt.Sprintf("kafka:%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
}

// sleepWithBackoff ждет d или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff — удвоение с потолком retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual — equal jitter: половина задержки фиксирована, половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}
