// Package clip reads images from the system clipboard.
package clip

import (
	"log"

	"golang.design/x/clipboard"
)

// Reader returns the image currently on the clipboard, if any.
type Reader interface {
	ReadImage() ([]byte, bool)
}

// System reads the desktop clipboard. A System whose Init failed reports an
// empty clipboard.
type System struct {
	ok bool
}

// NewSystem initialises clipboard access. Failure is logged, not returned:
// the board still works without paste.
func NewSystem() *System {
	if err := clipboard.Init(); err != nil {
		log.Println("clipboard unavailable, paste disabled:", err)
		return &System{}
	}
	return &System{ok: true}
}

// ReadImage returns PNG-encoded clipboard contents.
func (s *System) ReadImage() ([]byte, bool) {
	if !s.ok {
		return nil, false
	}
	data := clipboard.Read(clipboard.FmtImage)
	return data, len(data) > 0
}
