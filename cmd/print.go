package cmd

import (
	"fmt"
	"os"

	"github.com/cchamberlain/npm-windows-upgrade/tui"
)

func PrintError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
	}
}

func PrintWarningSimple(message string) {
	if message != "" {
		fmt.Println(tui.RenderWarningSimple(message))
	}
}
