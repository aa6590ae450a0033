package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestNewJSON_WritesTypedFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewJSON(&buf, "info").With(String("service", "transport-api"))

	l.Info("request status updated",
		String("request_id", "r1"),
		Int("attempt", 2),
		Bool("retry", false),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("store unavailable")),
	)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	e := lines[0]
	require.Equal(t, "INFO", e["level"])
	require.Equal(t, "request status updated", e["msg"])
	require.Equal(t, "transport-api", e["service"])
	require.Equal(t, "r1", e["request_id"])
	require.Equal(t, float64(2), e["attempt"])
	require.Equal(t, false, e["retry"])
	require.Equal(t, float64(1500*time.Millisecond), e["took"])
	require.Equal(t, "store unavailable", e["err"])
}

func TestNewJSON_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewJSON(&buf, "warn")

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e", Err(nil))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "w", lines[0]["msg"])
	require.Equal(t, "e", lines[1]["msg"])
	require.Nil(t, lines[1]["err"])
	require.NoError(t, l.Sync())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equalf(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestToAttr_FallsBackToAny(t *testing.T) {
	t.Parallel()

	a := toAttr(Any("fields", []string{"role"}))
	require.Equal(t, slog.KindAny, a.Value.Kind())
	require.Equal(t, "fields", a.Key)
}

func TestNopLogger_NoPanic(t *testing.T) {
	t.Parallel()

	l := Nop()
	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w", Int64("offset", 3))
	l.Error("e", Err(errors.New("boom")))

	require.NotNil(t, l.With(String("x", "y")))
	require.NoError(t, l.Sync())
}
