//go:build windows

package mmfile

import "os"

// Map reads the whole file. Link files are small, so a view mapping buys
// nothing on Windows.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
