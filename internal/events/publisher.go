// Package events mengabarkan perubahan yang dilakukan admin ke aplikasi lain
// (aplikasi customer & mitra) lewat Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"smartcare-admin/pkg/logger"

	"github.com/IBM/sarama"
)

// Nama event
const (
	MitraStatusChanged   = "mitra.status_changed"
	TopUpApproved        = "topup.approved"
	TopUpRejected        = "topup.rejected"
	SaldoCredited        = "saldo.credited"
	TagihanStatusChanged = "tagihan.status_changed"
	LayananChanged       = "layanan.changed"
	NotificationSent     = "notifikasi.sent"
)

// Publisher dipanggil setelah mutasi sukses. Implementasi tidak boleh
// menggagalkan request; error cukup di-log.
type Publisher interface {
	Publish(ctx context.Context, event, key string, payload interface{})
}

type envelope struct {
	Event      string      `json:"event"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// KafkaPublisher mengirim event ke topic <prefix><event>
type KafkaPublisher struct {
	producer sarama.SyncProducer
	prefix   string
}

func NewKafkaPublisher(brokers []string, topicPrefix string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{producer: producer, prefix: topicPrefix}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, event, key string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Key: key, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		logger.Op("events.publish").WithError(err).WithField("event", event).Error("Gagal encode event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.prefix + event,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		logger.Op("events.publish").WithError(err).WithField("event", event).Error("Gagal kirim event ke Kafka")
		return
	}
	logger.Op("events.publish").WithFields(map[string]interface{}{
		"event":     event,
		"partition": partition,
		"offset":    offset,
	}).Debug("Event terkirim")
}

func (p *KafkaPublisher) Close() error { return p.producer.Close() }

// NopPublisher dipakai kalau KAFKA_BROKERS kosong
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, interface{}) {}
