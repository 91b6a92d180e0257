//go:build !headless

package gui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"telegram_relay/internal/app"
	"telegram_relay/internal/domain/message"
)

// form owns the Draft. Every field of form is touched only on the fyne
// goroutine; sends run elsewhere on a Request snapshot.
type form struct {
	ctx    context.Context
	app    fyne.App
	win    fyne.Window
	creds  *app.CredentialService
	relay  *app.RelayService
	logger *logrus.Entry

	draft   *app.Draft
	sending bool

	token      *widget.Entry
	chatID     *widget.Entry
	text       *widget.Entry
	fileLabel  *widget.Label
	btnLabels  [message.MaxButtons]*widget.Entry
	btnURLs    [message.MaxButtons]*widget.Entry
	sendButton *widget.Button
	status     *widget.Label
	statusSeq  uint64
}

// Run shows the send form and blocks until the window is closed or ctx is done.
func Run(ctx context.Context, creds *app.CredentialService, relay *app.RelayService, logger *logrus.Entry) {
	uiApp := fyneapp.New()
	f := &form{
		ctx:    ctx,
		app:    uiApp,
		creds:  creds,
		relay:  relay,
		logger: logger,
		draft:  app.NewDraft(creds.Current()),
	}
	f.win = uiApp.NewWindow("Telegram Relay")
	f.win.SetMaster()
	f.win.Resize(fyne.NewSize(560, 640))
	f.win.SetContent(f.build())
	f.refreshSendState()

	closed := make(chan struct{})
	go quitOnCancel(ctx, closed, func() {
		fyne.Do(func() {
			f.logger.Info("Context canceled, closing send form")
			f.app.Quit()
		})
	})

	f.logger.Info("Send form opened")
	f.win.ShowAndRun()
	close(closed)
}

func (f *form) build() fyne.CanvasObject {
	f.token = widget.NewPasswordEntry()
	f.token.SetPlaceHolder("123456:ABC-DEF...")
	f.token.SetText(f.draft.Token)
	f.token.OnChanged = func(s string) {
		f.draft.Token = s
		f.refreshSendState()
	}

	f.chatID = widget.NewEntry()
	f.chatID.SetPlaceHolder("Chat id or @channel")
	f.chatID.SetText(f.draft.ChatID)
	f.chatID.OnChanged = func(s string) {
		f.draft.ChatID = s
		f.refreshSendState()
	}

	saveToken := widget.NewButton("Save", func() {
		text, d := saveStatus(f.creds.SaveToken(f.token.Text), "Token saved")
		f.showStatus(text, d)
	})
	saveChat := widget.NewButton("Save", func() {
		text, d := saveStatus(f.creds.SaveChatID(f.chatID.Text), "Chat id saved")
		f.showStatus(text, d)
	})

	settings := container.New(layout.NewFormLayout(),
		widget.NewLabel("Bot token"), container.NewBorder(nil, nil, nil, saveToken, f.token),
		widget.NewLabel("Chat ID"), container.NewBorder(nil, nil, nil, saveChat, f.chatID),
	)

	f.text = widget.NewMultiLineEntry()
	f.text.SetPlaceHolder("Message (Markdown: *bold*, _italic_, [link](https://example.com))")
	f.text.SetMinRowsVisible(6)
	f.text.Wrapping = fyne.TextWrapWord
	f.text.OnChanged = func(s string) {
		f.draft.Text = s
		f.refreshSendState()
	}

	f.fileLabel = widget.NewLabel(noFileText)
	files := container.NewHBox(
		f.fileLabel,
		layout.NewSpacer(),
		widget.NewButton("Image", func() { f.chooseFile(message.KindImage) }),
		widget.NewButton("Video", func() { f.chooseFile(message.KindVideo) }),
		widget.NewButton("File", func() { f.chooseFile(message.KindFile) }),
		widget.NewButton("Clear", f.clearFile),
	)

	grid := container.NewGridWithColumns(2)
	for i := range f.btnLabels {
		slot := i
		f.btnLabels[slot] = widget.NewEntry()
		f.btnLabels[slot].SetPlaceHolder(fmt.Sprintf("Button %d text", slot+1))
		f.btnURLs[slot] = widget.NewEntry()
		f.btnURLs[slot].SetPlaceHolder("https://")
		f.btnLabels[slot].OnChanged = func(string) { f.syncButton(slot) }
		f.btnURLs[slot].OnChanged = func(string) { f.syncButton(slot) }
		grid.Add(f.btnLabels[slot])
		grid.Add(f.btnURLs[slot])
	}

	f.status = widget.NewLabel("")
	f.sendButton = widget.NewButton("Send", f.send)
	f.sendButton.Importance = widget.HighImportance
	footer := container.NewBorder(nil, nil, nil, f.sendButton, f.status)

	return container.NewVBox(
		widget.NewCard("Bot", "", settings),
		widget.NewCard("Message", "", f.text),
		widget.NewCard("File / media", "", files),
		widget.NewCard("Link buttons", "", grid),
		footer,
	)
}

func (f *form) syncButton(slot int) {
	f.draft.SetButton(slot, f.btnLabels[slot].Text, f.btnURLs[slot].Text)
}

func (f *form) chooseFile(kind message.Kind) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			f.showStatus(fmt.Sprintf("Could not open file: %v", err), statusFailed)
			return
		}
		if rc == nil {
			// Cancelled; keep the current selection.
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()

		f.draft.Attach(kind, path)
		f.fileLabel.SetText(fmt.Sprintf("Selected (%s): %s", kind, filepath.Base(path)))
		f.logger.WithFields(logrus.Fields{"kind": kind, "path": path}).Debug("Attachment selected")
		f.refreshSendState()
	}, f.win)
	if exts := kind.Extensions(); exts != nil {
		fd.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	fd.Show()
}

func (f *form) clearFile() {
	f.draft.ClearAttachment()
	f.fileLabel.SetText(noFileText)
	f.refreshSendState()
}

func (f *form) send() {
	if f.sending {
		return
	}
	req := f.draft.Request()
	f.sending = true
	f.refreshSendState()

	go func() {
		sent, err := f.relay.Send(f.ctx, req, func(p app.Phase) {
			if p == app.PhaseDispatching {
				fyne.Do(func() { f.status.SetText("Sending...") })
			}
		})
		fyne.Do(func() {
			f.sending = false
			if err == nil {
				f.draft.Settle(sent)
				if f.draft.Attachment() == nil {
					f.fileLabel.SetText(noFileText)
				}
			}
			text, d := sendStatus(err)
			f.showStatus(text, d)
			f.refreshSendState()
		})
	}()
}

func (f *form) refreshSendState() {
	if f.sendButton == nil {
		return
	}
	if !f.sending && f.draft.Ready() {
		f.sendButton.Enable()
	} else {
		f.sendButton.Disable()
	}
}

// showStatus displays text for d. A newer message cancels the older one's expiry.
func (f *form) showStatus(text string, d time.Duration) {
	f.statusSeq++
	seq := f.statusSeq
	f.status.SetText(text)
	time.AfterFunc(d, func() {
		fyne.Do(func() {
			if f.statusSeq == seq {
				f.status.SetText("")
			}
		})
	})
}
