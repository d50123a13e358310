package src

import (
	"os"
	"strings"
)

// ReadFile reads path and returns its contents with surrounding whitespace
// trimmed, ready to hand to ParseMaze via a strings.Reader.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
