package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readText reads the whole file at path as text. Line endings are
// normalized to \n ("\r\n" and a lone "\r" both become "\n").
func readText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// writeFile writes data to path, truncating it, and reports close errors
func writeFile(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	_, err = file.Write(data)
	return err
}

// fileSize returns the size in bytes of the file at path
func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
