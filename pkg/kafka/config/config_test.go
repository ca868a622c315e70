package kafka_config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Topic != DefaultTopic || cfg.DLQTopic != DefaultDLQTopic {
		t.Errorf("unexpected topics: %s / %s", cfg.Topic, cfg.DLQTopic)
	}
	if len(cfg.Brokers) != 1 || cfg.Brokers[0] != "localhost:9092" {
		t.Errorf("unexpected brokers: %v", cfg.Brokers)
	}
}

func TestLoad_BrokerList(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "k1:9092, k2:9092")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Brokers) != 2 || cfg.Brokers[1] != "k2:9092" {
		t.Errorf("brokers not trimmed: %v", cfg.Brokers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"empty broker", map[string]string{EnvKafkaBrokers: "k1:9092,,"}, "Broker 1 cannot be empty"},
		{"dlq equals topic", map[string]string{EnvKafkaTopic: "t", EnvKafkaDLQTopic: "t"}, "DLQTopic must differ"},
		{"bad compression", map[string]string{EnvKafkaProducerCompression: "brotli"}, "ProducerCompression"},
		{"bad acks", map[string]string{EnvKafkaProducerRequireAcks: "2"}, "ProducerRequireAcks"},
		{"bad offset", map[string]string{EnvKafkaConsumerStartOffset: "5"}, "ConsumerStartOffset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}
