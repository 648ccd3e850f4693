package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom starts from an existing configuration, such as one
// returned by Load.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithClockPolicy sets the halfmove clock policy name.
func (b *ConfigBuilder) WithClockPolicy(name string) *ConfigBuilder {
	b.cfg.Engine.ClockPolicy = name
	return b
}

// WithAttackCache sets the attack cache capacity (0 disables it).
func (b *ConfigBuilder) WithAttackCache(capacity int) *ConfigBuilder {
	b.cfg.Engine.AttackCacheCapacity = capacity
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithFailFast stops batches at the first invalid record.
func (b *ConfigBuilder) WithFailFast(failFast bool) *ConfigBuilder {
	b.cfg.Batch.FailFast = failFast
	return b
}

// WithBufferSize sets the batch channel capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Batch.BufferSize = n
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithUnicode enables glyph board diagrams.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
