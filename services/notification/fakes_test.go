package notification

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"unifix/database"
	"unifix/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSender records every send and can be told to fail specific tokens.
type fakeSender struct {
	mu         sync.Mutex
	sent       []sentPush
	failTokens map[string]error
}

type sentPush struct {
	token string
	msg   models.PushMessage
}

func (f *fakeSender) Send(ctx context.Context, token string, msg models.PushMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failTokens[token]; ok {
		return err
	}
	f.sent = append(f.sent, sentPush{token: token, msg: msg})
	return nil
}

func (f *fakeSender) failToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTokens == nil {
		f.failTokens = make(map[string]error)
	}
	f.failTokens[token] = fmt.Errorf("transport rejected token %s", token)
}

func (f *fakeSender) tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var tokens []string
	for _, s := range f.sent {
		tokens = append(tokens, s.token)
	}
	return tokens
}

func (f *fakeSender) messagesTo(token string) []models.PushMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var msgs []models.PushMessage
	for _, s := range f.sent {
		if s.token == token {
			msgs = append(msgs, s.msg)
		}
	}
	return msgs
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestEngine(t *testing.T) (*Engine, *database.MemoryStore, *fakeSender) {
	t.Helper()
	store := database.NewMemoryStore()
	sender := &fakeSender{}
	dispatcher, err := NewDefaultDispatcher(store, sender, zap.NewNop())
	require.NoError(t, err)
	engine, err := NewEngine(store, dispatcher, zap.NewNop())
	require.NoError(t, err)
	return engine, store, sender
}

func boolPtr(b bool) *bool { return &b }

// userDoc builds a raw user document. Empty token omits the field; nil
// pointers omit the corresponding settings flag.
func userDoc(role, token string, push, news *bool) map[string]interface{} {
	doc := map[string]interface{}{"role": role}
	if token != "" {
		doc["fcmToken"] = token
	}
	settings := map[string]interface{}{}
	if push != nil {
		settings["push"] = *push
	}
	if news != nil {
		settings["news"] = *news
	}
	if len(settings) > 0 {
		doc["notificationSettings"] = settings
	}
	return doc
}
