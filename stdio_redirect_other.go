//go:build !unix

package main

import "os"

// Best-effort fallback for non-Unix platforms. It does not capture
// runtime-level stderr output (panics) the way Dup2 does on Unix, but it
// keeps the monitor buildable everywhere.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
