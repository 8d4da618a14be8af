package rak811

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/teepbee/go-rak811/at"
)

// Device represents a RAK811 LoRa module driven over its AT command UART.
//
// A single goroutine owns all reads from the transport and routes each
// incoming line into one of three bounded queues: terminal responses
// (consumed by command execution), asynchronous "at+recv=" events, and
// informational output. Commands are written directly by the calling
// goroutine; the module processes one command at a time, so a Device must
// not be driven from multiple goroutines concurrently. Callers needing
// shared access serialize externally.
type Device struct {
	transport Transport
	logger    *slog.Logger
	reset     ResetLine

	commandTimeout time.Duration
	joinTimeout    time.Duration
	eventTimeout   time.Duration

	// Line queues fed by the read loop. Success lines are routed to both
	// responses and info so that query output read through Info is not
	// lost to the command's own completion.
	responses chan string
	events    chan string
	info      chan string

	// readErr is set by the read loop before readDone is closed.
	readErr    error
	readDone   chan struct{}
	readCancel context.CancelFunc

	closed bool
}

// New creates a Device with the given configuration. It dials the transport
// and starts the read loop; it does not touch the module's configuration.
func New(ctx context.Context, config Config) (*Device, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	transport, err := config.Dialer.Dial(ctx)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, ErrNotInitialized
	}

	readCtx, readCancel := context.WithCancel(context.Background())
	d := &Device{
		transport:      transport,
		logger:         config.Logger,
		reset:          config.Reset,
		commandTimeout: config.CommandTimeout,
		joinTimeout:    config.JoinTimeout,
		eventTimeout:   config.EventTimeout,
		responses:      make(chan string, 8),
		events:         make(chan string, 64),
		info:           make(chan string, 64),
		readDone:       make(chan struct{}),
		readCancel:     readCancel,
	}

	go d.readLoop(readCtx)

	return d, nil
}

// Close shuts down the device and releases all resources. It stops the read
// loop and closes the transport. After Close the device cannot be reused.
func (d *Device) Close() error {
	if d.closed {
		return ErrAlreadyClosed
	}
	d.closed = true

	d.readCancel()

	if d.transport != nil {
		return d.transport.Close()
	}
	return nil
}

// readLoop is the only reader of the transport. It tokenizes the byte
// stream into lines and routes each line to the matching queue. It exits
// when the transport fails or is closed, recording the cause in readErr.
func (d *Device) readLoop(ctx context.Context) {
	defer close(d.readDone)

	scanner := bufio.NewScanner(d.transport)
	scanner.Split(at.Splitter)

	for scanner.Scan() {
		if ctx.Err() != nil {
			d.readErr = ctx.Err()
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		d.logger.Debug("recv", "line", line)

		switch at.Classify(line) {
		case at.TypeOK:
			d.route(d.responses, line)
			d.route(d.info, line)
		case at.TypeError:
			d.route(d.responses, line)
		case at.TypeEvent:
			d.route(d.events, line)
		case at.TypeInfo:
			d.route(d.info, line)
		}
	}

	if err := scanner.Err(); err != nil {
		d.readErr = err
	}
}

// route queues a line without blocking the read loop. When a queue is full
// the line is dropped; a consumer that far behind has abandoned that stream.
func (d *Device) route(ch chan string, line string) {
	select {
	case ch <- line:
	default:
		d.logger.Debug("queue full, dropping line", "line", line)
	}
}

// loopErr reports why the read loop stopped.
func (d *Device) loopErr() error {
	if d.readErr != nil {
		return d.readErr
	}
	return io.EOF
}

// exec sends a single AT command to the module and blocks until a terminal
// response line arrives or the context deadline elapses. When the context
// carries no deadline the configured command timeout applies.
//
// The returned string is the full terminal line ("OK...", "Initialization
// OK..."). Module-reported errors come back as *ModuleError, transport
// failures as *ChannelError, and a missing terminal response as ErrTimeout.
func (d *Device) exec(ctx context.Context, cmd at.Command) (string, error) {
	if d.closed {
		return "", ErrAlreadyClosed
	}
	if d.transport == nil {
		return "", ErrNotInitialized
	}

	if _, ok := ctx.Deadline(); !ok && d.commandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.commandTimeout)
		defer cancel()
	}

	// Drop lines left over from earlier transactions so this command pairs
	// with its own response and a following Info read returns only this
	// command's output. Success lines are dual-routed into info, so both
	// queues must be cleared together. Buffered events are kept.
stale:
	for {
		select {
		case <-d.responses:
		case <-d.info:
		default:
			break stale
		}
	}

	d.logger.Debug("send", "command", string(cmd))
	if _, err := d.transport.Write(cmd.Wire()); err != nil {
		return "", &ChannelError{Op: "write", Err: err}
	}

	select {
	case line := <-d.responses:
		return finalize(line)
	case <-d.readDone:
		return "", &ChannelError{Op: "read", Err: d.loopErr()}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("command %q: %w", cmd, ErrTimeout)
		}
		return "", ctx.Err()
	}
}

// expectOK runs a command and discards the success line.
func (d *Device) expectOK(ctx context.Context, cmd at.Command) error {
	_, err := d.exec(ctx, cmd)
	return err
}

// finalize maps a terminal line to the transaction result.
func finalize(line string) (string, error) {
	switch at.Classify(line) {
	case at.TypeOK:
		return line, nil
	case at.TypeError:
		codeText := strings.TrimSpace(strings.TrimPrefix(line, at.Error))
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrMalformedResponse, line)
		}
		return "", &ModuleError{Code: at.ResponseCode(code)}
	default:
		return "", fmt.Errorf("%w: %q", ErrMalformedResponse, line)
	}
}

// drainSettle is how long a burst may go quiet before Events or Info stops
// collecting lines that are already in flight through the read loop.
const drainSettle = 20 * time.Millisecond

// drainLines collects whatever else arrives on ch until the stream goes
// quiet for drainSettle.
func (d *Device) drainLines(ch chan string, first string) []string {
	lines := []string{first}
	settle := time.NewTimer(drainSettle)
	defer settle.Stop()
	for {
		select {
		case l := <-ch:
			lines = append(lines, l)
			settle.Reset(drainSettle)
		case <-settle.C:
			return lines
		}
	}
}

// Events returns buffered asynchronous events from the module, blocking
// until at least one arrives or the wait times out. The rest of a burst is
// collected until the stream goes briefly quiet, so related events are
// returned in one call.
//
// When the context carries no deadline the configured event timeout applies.
// A wait that produces nothing returns ErrTimeout.
func (d *Device) Events(ctx context.Context) ([]at.Event, error) {
	line, err := d.waitLine(ctx, d.events, d.eventTimeout)
	if err != nil {
		return nil, err
	}

	lines := d.drainLines(d.events, line)

	events := make([]at.Event, 0, len(lines))
	for _, l := range lines {
		ev, err := at.ParseEvent(l)
		if err != nil {
			return events, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Info returns buffered informational output from the module (help text,
// status dumps, boot banner), blocking until at least one line arrives or
// the wait times out. Like Events, it collects the rest of a burst until
// the stream goes briefly quiet.
func (d *Device) Info(ctx context.Context) ([]string, error) {
	line, err := d.waitLine(ctx, d.info, d.commandTimeout)
	if err != nil {
		return nil, err
	}
	return d.drainLines(d.info, line), nil
}

// waitLine blocks for one line from the given queue, applying fallback as
// the timeout when the context has no deadline.
func (d *Device) waitLine(ctx context.Context, ch chan string, fallback time.Duration) (string, error) {
	if d.closed {
		return "", ErrAlreadyClosed
	}

	if _, ok := ctx.Deadline(); !ok && fallback > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fallback)
		defer cancel()
	}

	select {
	case line := <-ch:
		return line, nil
	case <-d.readDone:
		return "", &ChannelError{Op: "read", Err: d.loopErr()}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ctx.Err()
	}
}
