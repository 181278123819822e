// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/wrapcheck/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times. Replaced in tests.
var Init = func() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.Debug("Clipboard: initialized")
	})
	return initErr
}

// write is replaced in tests.
var write = func(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	write(text)
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}
