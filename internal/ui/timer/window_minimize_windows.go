//go:build windows

package timer

import (
	"syscall"

	"fyne.io/fyne/v2/driver"
)

const swMinimize = 6

var (
	user32DLL      = syscall.NewLazyDLL("user32.dll")
	procShowWindow = user32DLL.NewProc("ShowWindow")
)

func (timerWindow *Window) minimizeNative() bool {
	nativeWindow, ok := timerWindow.window.(driver.NativeWindow)
	if !ok {
		return false
	}

	minimized := false
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}
		procShowWindow.Call(hwnd, swMinimize)
		minimized = true
	})
	return minimized
}
