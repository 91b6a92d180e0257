package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"telegram_relay/internal/domain/message"
	"telegram_relay/internal/domain/telegram"
)

func mustValidate(t *testing.T, req message.Request) Validated {
	t.Helper()
	v, err := Validate(req)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return v
}

func TestDispatch_RoutesByAttachmentKind(t *testing.T) {
	tests := []struct {
		name string
		kind message.Kind
		file string
		want telegram.Method
	}{
		{name: "image", kind: message.KindImage, file: "pic.png", want: telegram.MethodSendPhoto},
		{name: "video", kind: message.KindVideo, file: "clip.mp4", want: telegram.MethodSendVideo},
		{name: "file", kind: message.KindFile, file: "report.pdf", want: telegram.MethodSendDocument},
		{name: "unknown kind", kind: message.Kind("audio"), file: "song.mp3", want: telegram.MethodSendDocument},
		{name: "none", want: telegram.MethodSendMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := message.Request{Token: validToken, ChatID: "999", Text: "caption"}
			if tt.file != "" {
				req.Attachment = &message.Attachment{Kind: tt.kind, Path: writeFile(t, tt.file)}
			}

			client := &fakeClient{}
			d := NewDispatcher(factoryFor(client, nil, nil), testLogger())
			sent, err := d.Dispatch(context.Background(), mustValidate(t, req))
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if len(client.calls) != 1 {
				t.Fatalf("calls = %d, want exactly 1", len(client.calls))
			}
			call := client.calls[0]
			if call.Method != tt.want || sent.Method != tt.want {
				t.Fatalf("method = %s (sent %s), want %s", call.Method, sent.Method, tt.want)
			}
			if sent.UsedAttachment != (tt.file != "") {
				t.Fatalf("UsedAttachment = %v", sent.UsedAttachment)
			}
			if call.Body != "caption" {
				t.Fatalf("body = %q, want %q", call.Body, "caption")
			}
			if tt.file != "" && call.Path != req.Attachment.Path {
				t.Fatalf("path = %q, want %q", call.Path, req.Attachment.Path)
			}
		})
	}
}

func TestDispatch_TextScenario(t *testing.T) {
	client := &fakeClient{}
	var tokens []string
	d := NewDispatcher(factoryFor(client, nil, &tokens), testLogger())

	_, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{
		Token:  "123456:ABC-DEF",
		ChatID: "999",
		Text:   "hello",
	}))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(client.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(client.calls))
	}
	call := client.calls[0]
	if call.Method != telegram.MethodSendMessage || call.ChatID != "999" || call.Body != "hello" {
		t.Fatalf("call = %#v", call)
	}
	if len(call.Buttons) != 0 {
		t.Fatalf("buttons = %#v, want none", call.Buttons)
	}
	if len(tokens) != 1 || tokens[0] != "123456:ABC-DEF" {
		t.Fatalf("client built for tokens %v", tokens)
	}
}

func TestDispatch_PhotoWithButtonScenario(t *testing.T) {
	path := writeFile(t, "pic.png")
	client := &fakeClient{}
	d := NewDispatcher(factoryFor(client, nil, nil), testLogger())

	sent, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{
		Token:      "123456:ABC-DEF",
		ChatID:     "999",
		Text:       "",
		Attachment: &message.Attachment{Kind: message.KindImage, Path: path},
		Buttons:    []message.Button{{Label: "Site", URL: "http://x.com"}},
	}))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(client.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(client.calls))
	}
	call := client.calls[0]
	if call.Method != telegram.MethodSendPhoto || call.Body != "" {
		t.Fatalf("call = %#v", call)
	}
	if len(call.Buttons) != 1 || call.Buttons[0] != (message.Button{Label: "Site", URL: "http://x.com"}) {
		t.Fatalf("buttons = %#v", call.Buttons)
	}
	if !sent.UsedAttachment || sent.Buttons != 1 {
		t.Fatalf("sent = %#v", sent)
	}
}

func TestDispatch_ClientErrorIsDispatchFailed(t *testing.T) {
	client := &fakeClient{err: errBoom}
	d := NewDispatcher(factoryFor(client, nil, nil), testLogger())

	_, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{Token: validToken, ChatID: "999", Text: "hi"}))
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("error = %v, want ErrDispatchFailed", err)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("error = %v, want it to wrap the client error", err)
	}
	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) || dispatchErr.Method != telegram.MethodSendMessage {
		t.Fatalf("error = %#v, want *DispatchError for sendMessage", err)
	}
	if len(client.calls) != 1 {
		t.Fatalf("calls = %d, want 1 (no retry)", len(client.calls))
	}
}

func TestDispatch_MissingAttachmentFailsBeforeCall(t *testing.T) {
	client := &fakeClient{}
	created := 0
	d := NewDispatcher(factoryFor(client, &created, nil), testLogger())

	missing := filepath.Join(t.TempDir(), "gone.png")
	_, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{
		Token:      validToken,
		ChatID:     "999",
		Attachment: &message.Attachment{Kind: message.KindImage, Path: missing},
	}))
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("error = %v, want ErrDispatchFailed", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want it to wrap os.ErrNotExist", err)
	}
	if created != 0 || len(client.calls) != 0 {
		t.Fatalf("client created %d times with %d calls, want none", created, len(client.calls))
	}
}

func TestDispatch_DirectoryAttachmentFails(t *testing.T) {
	client := &fakeClient{}
	d := NewDispatcher(factoryFor(client, nil, nil), testLogger())

	_, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{
		Token:      validToken,
		ChatID:     "999",
		Attachment: &message.Attachment{Kind: message.KindFile, Path: t.TempDir()},
	}))
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("error = %v, want ErrDispatchFailed", err)
	}
	if len(client.calls) != 0 {
		t.Fatalf("calls = %d, want 0", len(client.calls))
	}
}

func TestDispatch_FactoryErrorIsDispatchFailed(t *testing.T) {
	d := NewDispatcher(failingFactory(errBoom), testLogger())
	_, err := d.Dispatch(context.Background(), mustValidate(t, message.Request{Token: validToken, ChatID: "999", Text: "hi"}))
	if !errors.Is(err, ErrDispatchFailed) || !errors.Is(err, errBoom) {
		t.Fatalf("error = %v", err)
	}
}

func TestDispatch_CanceledContext(t *testing.T) {
	client := &fakeClient{}
	d := NewDispatcher(factoryFor(client, nil, nil), testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Dispatch(ctx, mustValidate(t, message.Request{Token: validToken, ChatID: "999", Text: "hi"}))
	if !errors.Is(err, ErrDispatchFailed) || !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v", err)
	}
	if len(client.calls) != 0 {
		t.Fatalf("calls = %d, want 0", len(client.calls))
	}
}

func TestMethodFor_EmptyPathIsText(t *testing.T) {
	req := message.Request{Attachment: &message.Attachment{Kind: message.KindVideo}}
	if got := MethodFor(req); got != telegram.MethodSendMessage {
		t.Fatalf("MethodFor() = %s, want %s", got, telegram.MethodSendMessage)
	}
}
