// internal/domain/message/message.go
package message

// MaxButtons is the number of link-button slots a single message carries.
const MaxButtons = 6

// Kind identifies how an attachment is delivered to the chat.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindFile  Kind = "file"
)

// Extensions returns the file extensions offered by the picker for the kind.
// A nil result means any file is accepted.
func (k Kind) Extensions() []string {
	switch k {
	case KindImage:
		return []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}
	case KindVideo:
		return []string{".mp4", ".avi", ".mov", ".mkv"}
	default:
		return nil
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindImage, KindVideo, KindFile:
		return true
	}
	return false
}

// Attachment is the single optional media file sent along with a message.
type Attachment struct {
	Kind Kind
	Path string
}

// Request is a snapshot of everything the user entered for one send action.
type Request struct {
	Token      string
	ChatID     string
	Text       string
	Attachment *Attachment // nil when no file was chosen
	Buttons    []Button
}

// HasAttachment reports whether the request carries a file.
func (r Request) HasAttachment() bool {
	return r.Attachment != nil && r.Attachment.Path != ""
}
