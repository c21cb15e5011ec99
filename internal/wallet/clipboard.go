package wallet

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned on systems without a clipboard
// utility (e.g. a headless Linux box without xclip, xsel or wl-copy).
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard receives text copied by the user.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}
