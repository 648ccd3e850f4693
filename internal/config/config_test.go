package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/testutil"
)

// TestNewConfig_Defaults verifies the default configuration is valid and sensible
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Engine.ClockPolicy, "pawn-or-capture")
	testutil.AssertEqual(t, cfg.Engine.AttackCacheCapacity, 0)
	testutil.AssertEqual(t, cfg.Batch.Workers, 0)
	testutil.AssertEqual(t, cfg.Batch.BufferSize, 64)
	testutil.AssertEqual(t, cfg.Output.Format, TextFormat)
	testutil.AssertFalse(t, cfg.Output.Unicode)
	testutil.AssertTrue(t, cfg.Output.Coordinates)
	testutil.AssertEqual(t, cfg.Level(), logrus.InfoLevel)
}

// TestConfig_Validate verifies each section's validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*ConfigBuilder)
		wantErr string
	}{
		{"defaults", func(*ConfigBuilder) {}, ""},
		{"legacy clock policy", func(b *ConfigBuilder) { b.WithClockPolicy("pawn-only") }, ""},
		{"json output", func(b *ConfigBuilder) { b.WithOutputFormat(JSONFormat) }, ""},
		{"unknown clock policy", func(b *ConfigBuilder) { b.WithClockPolicy("never") },
			`clock policy "never" (valid: pawn-only, pawn-or-capture)`},
		{"negative cache", func(b *ConfigBuilder) { b.WithAttackCache(-1) }, "attack cache capacity -1"},
		{"negative workers", func(b *ConfigBuilder) { b.WithWorkers(-2) }, "workers (-2)"},
		{"zero buffer", func(b *ConfigBuilder) { b.WithBufferSize(0) }, "buffer size (0)"},
		{"unknown format", func(b *ConfigBuilder) { b.WithOutputFormat("yaml") },
			`output format "yaml" (valid: json, text)`},
		{"unknown log level", func(b *ConfigBuilder) { b.WithLogLevel("loud") }, `log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfigBuilder()
			tt.build(b)
			err := b.Build().Validate()
			if tt.wantErr == "" {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			testutil.AssertContains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestConfigBuilder verifies the fluent API sets every field
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithClockPolicy("pawn-only").
		WithAttackCache(32).
		WithWorkers(3).
		WithBufferSize(8).
		WithFailFast(true).
		WithOutputFormat(JSONFormat).
		WithUnicode(true).
		WithLogLevel("debug").
		WithOutput(&out).
		WithLog(&log).
		Build()

	testutil.AssertEqual(t, cfg.Engine.ClockPolicy, "pawn-only")
	testutil.AssertEqual(t, cfg.Engine.AttackCacheCapacity, 32)
	testutil.AssertEqual(t, cfg.Batch.Workers, 3)
	testutil.AssertEqual(t, cfg.Batch.BufferSize, 8)
	testutil.AssertTrue(t, cfg.Batch.FailFast)
	testutil.AssertEqual(t, cfg.Output.Format, JSONFormat)
	testutil.AssertTrue(t, cfg.Output.Unicode)
	testutil.AssertEqual(t, cfg.Level(), logrus.DebugLevel)
	testutil.AssertTrue(t, cfg.OutputFile == &out, "output writer")
	testutil.AssertTrue(t, cfg.LogFile == &log, "log writer")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// TestLoad verifies JSON files override defaults field by field
func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"engine": {"clock_policy": "pawn-only"},
		"batch": {"workers": 2},
		"output": null,
		"log_level": "warning"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.Engine.ClockPolicy, "pawn-only")
	testutil.AssertEqual(t, cfg.Engine.AttackCacheCapacity, 0, "unset field keeps default")
	testutil.AssertEqual(t, cfg.Batch.Workers, 2)
	testutil.AssertEqual(t, cfg.Batch.BufferSize, 64, "unset field keeps default")
	testutil.AssertEqual(t, cfg.Output.Format, TextFormat, "null section restored")
	testutil.AssertEqual(t, cfg.Level(), logrus.WarnLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	testutil.AssertTrue(t, stderrors.Is(err, fs.ErrNotExist), "missing file")

	_, err = Load(writeConfig(t, `{"engine": `))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = Load(writeConfig(t, `{"output": {"format": "xml"}}`))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	testutil.AssertTrue(t, strings.HasSuffix(path, filepath.Join("bitchess", "config.json")), path)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("JSON")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, f, JSONFormat)

	_, err = ParseOutputFormat("")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestEngineConfig_GameOptions(t *testing.T) {
	cfg := NewConfigBuilder().WithClockPolicy("pawn-only").WithAttackCache(8).Build()

	opts := cfg.Engine.GameOptions(logrus.New())
	testutil.AssertEqual(t, len(opts), 3)

	// A knight capture must not reset the clock under the legacy policy.
	g := engine.MustNewGame("4k3/8/8/3p4/8/4N3/8/4K3 w - - 5 1", opts...)
	m, err := engine.MoveFromNotation("e3d5")
	testutil.AssertNoError(t, err)
	g.ApplyMove(m)
	testutil.AssertEqual(t, g.HalfmoveClock, uint(6))

	opts = NewConfig().Engine.GameOptions(logrus.New())
	testutil.AssertEqual(t, len(opts), 2, "cache disabled by default")
}
