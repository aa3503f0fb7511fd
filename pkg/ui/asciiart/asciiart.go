// Package asciiart provides the shared block letter logo and tagline.
package asciiart

import (
	"fmt"
	"io"
)

// LogoHeight is the number of lines in the block letter logo.
const LogoHeight = 4

// logoText is the block letter logo shown by the root command and the TUI.
const logoText = `   _   ___ _____ ___ _   _ ___ _____ ___ ___ ___
  /_\ / __|_   _|_ _| | | |_ _|_   _|_ _| __/ __|
 / _ \ (__  | |  | || \_/ || |  | |  | || _|\__ \
/_/ \_\___| |_| |___|\___/|___| |_| |___|___|___/`

// Logo returns the ASCII art block letter logo.
func Logo() string {
	return logoText
}

// Tagline returns the standard tagline shown under the logo.
func Tagline() string {
	return "Mergington High School activity signup"
}

// PrintLogo writes the logo and tagline to the provided writer.
func PrintLogo(writer io.Writer) {
	_, _ = fmt.Fprintln(writer, Logo())
	_, _ = fmt.Fprintln(writer, Tagline())
	_, _ = fmt.Fprintln(writer)
}
