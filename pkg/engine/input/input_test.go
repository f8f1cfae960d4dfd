package input

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestDecodeKey(t *testing.T) {
	cases := map[string]string{
		"+":      "+",
		"p":      "p",
		"\x1b[A": "arrow_up",
		"\x1bOB": "arrow_down",
		"\x1b[C": "arrow_right",
		"\x1b[D": "arrow_left",
		"\x1b[Z": "",
		"\x1b":   "escape",
		"\r":     "enter",
		"\x03":   "ctrl_c",
		"\x01":   "",
	}
	for in, want := range cases {
		got, err := decodeKey(strings.NewReader(in))
		if err != nil {
			t.Errorf("decodeKey(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("decodeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeKey_EOF(t *testing.T) {
	if _, err := decodeKey(strings.NewReader("")); err == nil {
		t.Error("decodeKey(empty) = nil error, want EOF")
	}
}

func TestNextKey_LoneEscapeDoesNotBlock(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	go w.Write([]byte{0x1b})

	done := make(chan string, 1)
	go func() {
		code, _ := nextKey(r)
		done <- code
	}()

	select {
	case code := <-done:
		if code != "escape" {
			t.Errorf("nextKey(Esc) = %q, want escape", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("nextKey blocked on a lone Esc")
	}
}

func TestNextKey_ArrowInOneRead(t *testing.T) {
	code, err := nextKey(strings.NewReader("\x1b[A"))
	if err != nil || code != "arrow_up" {
		t.Errorf("nextKey(up) = %q, %v, want arrow_up", code, err)
	}
}

func TestNextKey_EOF(t *testing.T) {
	if _, err := nextKey(strings.NewReader("")); err != io.EOF {
		t.Errorf("nextKey(empty) error = %v, want EOF", err)
	}
}

func TestMapToIntent(t *testing.T) {
	cases := map[string]Action{
		"+":          ActionSizeUp,
		"-":          ActionSizeDown,
		"]":          ActionRoughnessUp,
		"arrow_down": ActionRoughnessDown,
		"p":          ActionCyclePalette,
		"g":          ActionCycleGenerator,
		"r":          ActionRegenerate,
		"s":          ActionExport,
		"0":          ActionReset,
		"ctrl_c":     ActionQuit,
		"x":          ActionNone,
	}
	for code, want := range cases {
		got := MapToIntent(RawInput{Device: DeviceTerminal, Code: code})
		if got.Action != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	want := []string{"ctrl_c", "escape", "q"}
	if len(codes) != len(want) {
		t.Fatalf("quit bindings = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("quit bindings = %v, want %v", codes, want)
			break
		}
	}
}

func TestActions_AllBoundAndNamed(t *testing.T) {
	byAction := GetBindingsByAction()
	acts := Actions()
	if len(acts) != len(byAction) {
		t.Errorf("Actions() has %d entries, bindings cover %d", len(acts), len(byAction))
	}
	for _, a := range acts {
		if len(byAction[a]) == 0 {
			t.Errorf("action %s has no binding", ActionName(a))
		}
		if ActionName(a) == "None" {
			t.Errorf("action %d has no name", a)
		}
	}
}
