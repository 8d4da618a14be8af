package rak811

import (
	"io"
	"sync"
)

// TestTransport is a test helper that simulates a blocking transport using
// channels. This is needed because the read loop continuously reads from the
// transport, and reads must block until data is available (like a real
// serial port would).
//
// Replies to commands are scripted with Script and delivered on the next
// Write, so a scripted reply can never be mistaken for a stale line and
// drained before the command that triggered it.
type TestTransport struct {
	mu       sync.Mutex
	readChan chan []byte
	scripts  [][]byte
	writes   []string
	writeErr error
	closed   bool
}

// NewTestTransport creates a new test transport for testing.
// Exported for use in tests.
func NewTestTransport() *TestTransport {
	return &TestTransport{
		readChan: make(chan []byte, 16),
	}
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	t.writes = append(t.writes, string(p))
	if len(t.scripts) > 0 && !t.closed {
		t.readChan <- t.scripts[0]
		t.scripts = t.scripts[1:]
	}
	return len(p), nil
}

func (t *TestTransport) Read(p []byte) (n int, err error) {
	data, ok := <-t.readChan
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.readChan)
	return nil
}

// Script queues a reply to be delivered after the next write. Each write
// consumes one scripted reply; writes beyond the script get no reply.
func (t *TestTransport) Script(reply string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scripts = append(t.scripts, []byte(reply))
}

// SendData queues data to be read immediately, independent of writes.
// This simulates unsolicited output from the module.
func (t *TestTransport) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.readChan <- []byte(data)
	}
}

// FailWrites makes every subsequent Write fail with err.
func (t *TestTransport) FailWrites(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeErr = err
}

// Writes returns the raw bytes written so far, one entry per Write call.
func (t *TestTransport) Writes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.writes...)
}
