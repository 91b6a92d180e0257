package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"telegram_relay/internal/domain/credentials"
	"telegram_relay/internal/domain/message"
	"telegram_relay/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const validToken = "123456:ABC-DEF"

type sendCall struct {
	Method  telegram.Method
	ChatID  string
	Body    string // text or caption
	Path    string
	Buttons []message.Button
}

type fakeClient struct {
	calls []sendCall
	err   error
}

func (f *fakeClient) record(c sendCall) error {
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeClient) SendText(chatID, text string, buttons []message.Button) error {
	return f.record(sendCall{Method: telegram.MethodSendMessage, ChatID: chatID, Body: text, Buttons: buttons})
}

func (f *fakeClient) SendPhoto(chatID, path, caption string, buttons []message.Button) error {
	return f.record(sendCall{Method: telegram.MethodSendPhoto, ChatID: chatID, Body: caption, Path: path, Buttons: buttons})
}

func (f *fakeClient) SendVideo(chatID, path, caption string, buttons []message.Button) error {
	return f.record(sendCall{Method: telegram.MethodSendVideo, ChatID: chatID, Body: caption, Path: path, Buttons: buttons})
}

func (f *fakeClient) SendDocument(chatID, path, caption string, buttons []message.Button) error {
	return f.record(sendCall{Method: telegram.MethodSendDocument, ChatID: chatID, Body: caption, Path: path, Buttons: buttons})
}

// factoryFor returns a factory handing out client and counting how often it was asked.
func factoryFor(client *fakeClient, created *int, tokens *[]string) telegram.ClientFactory {
	return func(token string) (telegram.Client, error) {
		if created != nil {
			*created++
		}
		if tokens != nil {
			*tokens = append(*tokens, token)
		}
		return client, nil
	}
}

func failingFactory(err error) telegram.ClientFactory {
	return func(string) (telegram.Client, error) { return nil, err }
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// writeFile creates a small file under t.TempDir and returns its path.
func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

type memoryStore struct {
	rec   credentials.Record
	saves int
	err   error
}

func (m *memoryStore) Load() credentials.Record { return m.rec }

func (m *memoryStore) Save(rec credentials.Record) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.rec = rec
	return nil
}

var errBoom = errors.New("boom")
