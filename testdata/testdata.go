// Package testdata embeds report corpora, one report per line.
package testdata

import (
	"bufio"
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.txt
var data embed.FS

func newScanner(t *testing.T, path string) *bufio.Scanner {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	scanner := bufio.NewScanner(f)
	t.Cleanup(func() {
		require.NoError(t, scanner.Err())
	})

	return scanner
}

func METAR(t *testing.T) *bufio.Scanner {
	return newScanner(t, "metar.txt")
}

func TAF(t *testing.T) *bufio.Scanner {
	return newScanner(t, "taf.txt")
}

// Station returns the station of a corpus line, skipping TAF headers.
func Station(line string) string {
	for _, field := range strings.Fields(line) {
		switch field {
		case "TAF", "AMD", "COR":
			continue
		}
		return field
	}
	return ""
}
