package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWrap_WithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core)).With(zap.String("component", "reports"))

	log.Info("hello", zap.Int("n", 1))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "reports" {
		t.Errorf("expected component field, got %v", ctx)
	}
	if ctx["n"] != int64(1) {
		t.Errorf("expected n=1, got %v", ctx["n"])
	}
}

func TestNewZapLogger_Builds(t *testing.T) {
	for _, cfg := range []*ZapLoggerConfig{
		{IsDevelopment: true, Encoding: "console", Level: "debug"},
		{Encoding: "json", Level: "info", DisableCaller: true, DisableStacktrace: true},
	} {
		if NewZapLogger(cfg) == nil {
			t.Errorf("NewZapLogger(%+v) returned nil", cfg)
		}
	}
}
