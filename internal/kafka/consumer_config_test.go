package kafka

import (
	"slices"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first lower", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"explicit last", "last", kafkago.LastOffset},
		{"unknown -> last", "unknown", kafkago.LastOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "orderlines",
				GroupID:     "group-1",
				StartOffset: tt.startOffset,
			}
			rc := cfg.ReaderConfig()

			if rc.StartOffset != tt.wantOffset {
				t.Fatalf("StartOffset: want %d, got %d", tt.wantOffset, rc.StartOffset)
			}
			if !slices.Equal(rc.Brokers, cfg.Brokers) || rc.Topic != cfg.Topic || rc.GroupID != cfg.GroupID {
				t.Fatalf("base fields not propagated: %+v", rc)
			}
			if rc.CommitInterval != 0 {
				t.Fatalf("CommitInterval: want 0 (manual commit), got %v", rc.CommitInterval)
			}
		})
	}
}

func TestConsumerConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := (&ConsumerConfig{}).withDefaults()
	if got.ProcessTimeout != 5*time.Second || got.RetryInitial != time.Second || got.RetryMax != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	got = (&ConsumerConfig{RetryInitial: time.Minute, RetryMax: time.Second}).withDefaults()
	if got.RetryMax != time.Minute {
		t.Fatalf("RetryMax must not be below RetryInitial: %+v", got)
	}
}
