package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrCredentials marks a missing or malformed credential file.
var ErrCredentials = errors.New("credentials")

// Credentials holds the trade API key pair.
type Credentials struct {
	Key    string
	Secret string
}

// LoadCredentials reads the key from the first and the secret from the second
// non-empty line of path.
func LoadCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: read %s: %v", ErrCredentials, path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Credentials{}, fmt.Errorf("%w: %s must hold the key and the secret on two lines", ErrCredentials, path)
	}

	return Credentials{Key: lines[0], Secret: lines[1]}, nil
}
