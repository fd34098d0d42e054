//go:build unix

package dfn

import (
	"os"

	"golang.org/x/sys/unix"
)

// unixHotkeyPoller puts stdin into raw, non-blocking mode (VMIN=0,
// VTIME=0, canonical mode and echo disabled) and reads at most one byte
// per peek, restoring the saved termios on close.
type unixHotkeyPoller struct {
	fd       int
	saved    *unix.Termios
	disabled bool
}

func newHotkeyPoller() hotkeyPoller {
	fd := int(os.Stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return &unixHotkeyPoller{disabled: true}
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return &unixHotkeyPoller{disabled: true}
	}

	return &unixHotkeyPoller{fd: fd, saved: saved}
}

func (p *unixHotkeyPoller) peek() (byte, bool) {
	if p.disabled {
		return 0, false
	}
	var buf [1]byte
	n, err := unix.Read(p.fd, buf[:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return buf[0], true
}

func (p *unixHotkeyPoller) close() {
	if p.disabled || p.saved == nil {
		return
	}
	unix.IoctlSetTermios(p.fd, ioctlSetTermios, p.saved)
}
