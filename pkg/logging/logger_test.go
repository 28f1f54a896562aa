package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hypechain/hypechain/pkg/config"
)

func TestFlatEncoder(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:      "INFO",
		Format:     "json",
		FlatFormat: true,
	}

	err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	// Capture output
	var buf bytes.Buffer
	oldLogger := Logger
	defer func() { Logger = oldLogger }()

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "timestamp",
		LevelKey:      "level",
		MessageKey:    "message",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	encoder := NewFlatEncoder(encoderConfig)
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("hype transferred", zap.String("from_user_id", "u1"), zap.Int64("amount", 10))

	// Verify JSON output
	var logObj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logObj); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if logObj["message"] != "hype transferred" {
		t.Errorf("Expected message 'hype transferred', got: %v", logObj["message"])
	}

	if logObj["from_user_id"] != "u1" {
		t.Errorf("Expected field 'from_user_id'='u1', got: %v", logObj["from_user_id"])
	}

	if logObj["amount"] != float64(10) {
		t.Errorf("Expected field 'amount'=10, got: %v", logObj["amount"])
	}

	if _, ok := logObj["timestamp"]; !ok {
		t.Error("Expected 'timestamp' field in log output")
	}
}

func capturedLogger(buf *bytes.Buffer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buf),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	oldLogger := Logger
	Logger = capturedLogger(&buf)
	defer func() { Logger = oldLogger }()

	WithComponent("ledger").Info("component message")

	var logObj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logObj); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if logObj["component"] != "ledger" {
		t.Errorf("Expected field 'component'='ledger', got: %v", logObj["component"])
	}
}

func TestWithUser(t *testing.T) {
	var buf bytes.Buffer
	oldLogger := Logger
	Logger = capturedLogger(&buf)
	defer func() { Logger = oldLogger }()

	WithUser("u1").Info("user message")

	var logObj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logObj); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if logObj["user_id"] != "u1" {
		t.Errorf("Expected field 'user_id'='u1', got: %v", logObj["user_id"])
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	oldLogger := Logger
	Logger = capturedLogger(&buf)
	defer func() { Logger = oldLogger }()

	WithContext(zap.String("path", "/api/feed"), zap.String("method", "GET")).Error("request failed")

	var logObj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logObj); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if logObj["path"] != "/api/feed" || logObj["method"] != "GET" {
		t.Errorf("Expected path/method fields, got: %v", logObj)
	}
}
