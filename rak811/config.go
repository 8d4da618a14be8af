package rak811

import (
	"log/slog"
	"time"
)

// Config holds the construction parameters for a Device.
type Config struct {
	// Dialer opens the transport to the module. Required.
	Dialer Dialer
	// Logger receives the outgoing command text and raw incoming lines at
	// debug level. When nil, diagnostics are discarded.
	Logger *slog.Logger
	// Reset drives the module's hardware reset pin. Optional; HardReset
	// fails with ErrNoResetLine when unset.
	Reset ResetLine
	// CommandTimeout bounds a single command/response transaction.
	// The module typically responds in under 1.5 seconds.
	CommandTimeout time.Duration
	// JoinTimeout bounds the join transaction, which can take much longer
	// than a regular command while the module negotiates with the network.
	JoinTimeout time.Duration
	// EventTimeout bounds a wait for asynchronous events. Event arrival
	// strongly depends on duty cycle; when sending often at high spreading
	// factors the module will hold off to respect the duty cycle.
	EventTimeout time.Duration
}

func (c *Config) validate() error {
	if c.Dialer == nil {
		return ErrNoDialer
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = 5 * time.Second
	}
	if c.JoinTimeout == 0 {
		c.JoinTimeout = 30 * time.Second
	}
	if c.EventTimeout == 0 {
		c.EventTimeout = 5 * time.Minute
	}
}

// ConfigBuilder assembles a Config. Build validates the result and applies
// defaults for anything left unset.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.Dialer = d
	return b
}

func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.Logger = l
	return b
}

func (b *ConfigBuilder) WithResetLine(r ResetLine) *ConfigBuilder {
	b.config.Reset = r
	return b
}

func (b *ConfigBuilder) WithCommandTimeout(d time.Duration) *ConfigBuilder {
	b.config.CommandTimeout = d
	return b
}

func (b *ConfigBuilder) WithJoinTimeout(d time.Duration) *ConfigBuilder {
	b.config.JoinTimeout = d
	return b
}

func (b *ConfigBuilder) WithEventTimeout(d time.Duration) *ConfigBuilder {
	b.config.EventTimeout = d
	return b
}

func (b *ConfigBuilder) Build() (Config, error) {
	if err := b.config.validate(); err != nil {
		return Config{}, err
	}
	b.config.setDefaults()
	return b.config, nil
}
