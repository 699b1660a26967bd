package services

import (
	"context"
	"sync"
	"time"

	"smartcare-admin/pkg/utils"
)

type publishedEvent struct {
	Event   string
	Key     string
	Payload interface{}
}

// recordingPublisher menyimpan event yang dipublish supaya bisa di-assert
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event, key string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Event: event, Key: key, Payload: payload})
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event)
	}
	return out
}

type fakeGateway struct {
	status *utils.GatewayStatus
	err    error
	asked  string
}

func (g *fakeGateway) CheckStatus(code string) (*utils.GatewayStatus, error) {
	g.asked = code
	return g.status, g.err
}

type broadcastCall struct {
	Audience, Title, Body string
}

type fakeBroadcaster struct {
	calls []broadcastCall
	err   error
}

func (b *fakeBroadcaster) Broadcast(_ context.Context, audience, title, body string, _ map[string]string) error {
	if b.err != nil {
		return b.err
	}
	b.calls = append(b.calls, broadcastCall{Audience: audience, Title: title, Body: body})
	return nil
}

// ago membuat waktu relatif yang stabil untuk urutan data
func ago(d time.Duration) time.Time {
	return time.Now().Add(-d)
}
