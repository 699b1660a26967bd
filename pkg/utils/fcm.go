package utils

import (
	"context"
	"fmt"

	"smartcare-admin/pkg/logger"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Topic FCM yang di-subscribe aplikasi customer & aplikasi mitra
const (
	TopicUsers  = "users"
	TopicMitras = "mitras"
)

// FCMBroadcaster mengirim notifikasi ke topic Firebase Cloud Messaging
type FCMBroadcaster struct {
	client *messaging.Client
}

// InitFCM menginisialisasi koneksi ke Firebase dari file service account.
// Path kosong = notifikasi dimatikan (Broadcast jadi no-op).
func InitFCM(ctx context.Context, credentialsPath string) (*FCMBroadcaster, error) {
	if credentialsPath == "" {
		logger.Log.Warn("FIREBASE_CREDENTIALS kosong, broadcast notifikasi dimatikan")
		return &FCMBroadcaster{}, nil
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	logger.Log.Info("Firebase Cloud Messaging siap")
	return &FCMBroadcaster{client: client}, nil
}

// Broadcast mengirim pesan ke audience: "users", "mitras", atau "all" (dua topic sekaligus)
func (b *FCMBroadcaster) Broadcast(ctx context.Context, audience, title, body string, data map[string]string) error {
	if b == nil || b.client == nil {
		logger.Log.WithField("audience", audience).Info("FCM tidak aktif, notifikasi tidak dikirim")
		return nil
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	switch audience {
	case TopicUsers, TopicMitras:
		message.Topic = audience
	default:
		message.Condition = fmt.Sprintf("'%s' in topics || '%s' in topics", TopicUsers, TopicMitras)
	}

	id, err := b.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("kirim notifikasi fcm: %w", err)
	}

	logger.Log.WithField("message_id", id).WithField("audience", audience).Info("Notifikasi terkirim")
	return nil
}
