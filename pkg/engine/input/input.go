// Package input reads control keys from the terminal and maps raw device
// codes to high-level intents.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// maxKeyBytes bounds one read from the terminal; escape sequences are shorter
const maxKeyBytes = 16

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

// decodeKey turns the bytes of one key press into a code.
// Escape sequences for arrow keys are consumed whole.
func decodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return "ctrl_c", nil
	case '\n', '\r':
		return "enter", nil
	case 0x1b:
		return decodeEscape(r)
	}

	if b1 >= 32 && b1 < 127 {
		return string(b1), nil
	}
	return "", nil
}

// decodeEscape handles both CSI sequences (ESC [) and SS3 sequences (ESC O)
func decodeEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "escape", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// nextKey reads whatever one key press delivered to r and decodes it.
// A raw terminal hands over a whole escape sequence in a single read, so a
// lone Esc decodes as "escape" without waiting for more input.
func nextKey(r io.Reader) (string, error) {
	buf := make([]byte, maxKeyBytes)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			return decodeKey(bytes.NewReader(buf[:n]))
		}
		if err != nil {
			return "", err
		}
	}
}

// ReadKey puts the terminal into raw mode, reads one key press from stdin
// and restores the terminal.
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	code, err := nextKey(os.Stdin)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot read stdin: %w", err)
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}

// ReadIntent reads one key press and maps it to an Intent
func ReadIntent() (Intent, error) {
	raw, err := ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(raw), nil
}
