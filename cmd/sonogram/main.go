// Command sonogram renders a spectrogram of a WAV file as a PNG image,
// a CSV table of dB values, or both.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sonogram:", err)
		os.Exit(1)
	}
}
