//go:build windows
// +build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// Init switches the console to UTF-8 and turns on VT escape processing so the
// styled output and spinner glyphs survive older Windows terminals. Called
// once before anything is printed.
func Init() {
	_ = windows.SetConsoleOutputCP(65001)
	_ = windows.SetConsoleCP(65001)

	enableVT(windows.Handle(os.Stdout.Fd()))
}

func enableVT(handle windows.Handle) {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
