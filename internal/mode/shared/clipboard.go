// Package shared provides utilities shared between mode controllers.
package shared

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the OS clipboard, or asks the terminal to do it
// with an OSC 52 sequence when the session is remote or multiplexed and the
// local clipboard is out of reach.
type SystemClipboard struct{}

// Copy copies text to the clipboard.
func (SystemClipboard) Copy(text string) error {
	if shouldUseOSC52() || clipboard.Unsupported {
		termenv.Copy(text)
		return nil
	}
	return clipboard.WriteAll(text)
}

func shouldUseOSC52() bool {
	for _, env := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
