package dfn

// hotkeyPoller is implemented by hotkey_unix.go and hotkey_other.go: a
// raw-mode, non-blocking single-byte terminal read used to satisfy the
// Hotkey interface (driver.go) without a coroutine or a dedicated reader
// goroutine.
type hotkeyPoller interface {
	peek() (byte, bool)
	close()
}

// TerminalHotkey adapts the platform hotkeyPoller to the Driver's Hotkey
// interface. Construct with NewTerminalHotkey and Close it when the run
// finishes to restore the terminal's original mode.
type TerminalHotkey struct {
	poller hotkeyPoller
}

// NewTerminalHotkey puts the controlling terminal into raw, non-blocking
// mode so PeekKey can be polled once per driver iteration without
// blocking the generation loop. On platforms or environments where raw
// mode isn't available (not a terminal, unsupported OS), PeekKey always
// reports false.
func NewTerminalHotkey() *TerminalHotkey {
	return &TerminalHotkey{poller: newHotkeyPoller()}
}

// PeekKey reports the next pending keypress, if any, without blocking.
func (h *TerminalHotkey) PeekKey() (byte, bool) {
	if h.poller == nil {
		return 0, false
	}
	return h.poller.peek()
}

// Close restores the terminal to its original mode.
func (h *TerminalHotkey) Close() {
	if h.poller != nil {
		h.poller.close()
	}
}
