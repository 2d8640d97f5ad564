package widget

import "github.com/atotto/clipboard"

// Clipboard gives widgets access to copy and paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// SystemClipboard is the clipboard of the host system.
type SystemClipboard struct{}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboardSupported reports whether a system clipboard tool is available.
func SystemClipboardSupported() bool {
	return !clipboard.Unsupported
}

// MemoryClipboard keeps the clipboard contents in memory.
type MemoryClipboard struct {
	Text string
}

func (c *MemoryClipboard) Read() (string, error) {
	return c.Text, nil
}

func (c *MemoryClipboard) Write(text string) error {
	c.Text = text
	return nil
}
