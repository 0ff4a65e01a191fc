//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// No termios on this platform
func resetTerminalMode() {}
