//go:build !windows

package timer

// fyne exposes no iconify call outside Windows; the caller hides the window to the tray instead.
func (timerWindow *Window) minimizeNative() bool {
	return false
}
