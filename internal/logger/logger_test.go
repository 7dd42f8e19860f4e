package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func resetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "blog-server")

	l.Info().Msg("listening")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "blog-server", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")

	caller, ok := entry["func"].(string)
	require.True(t, ok, "caller is stored under func")
	assert.True(t, strings.HasSuffix(caller, "TestNewLogger_EntryFields"), "caller %q is a function name, not file:line", caller)
}

func TestNewLogger_StdoutConstructor(t *testing.T) {
	l := NewLogger("blog-client")

	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "empty keeps current", level: "", want: zerolog.InfoLevel},
		{name: "unknown rejected", level: "loud", want: zerolog.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLevel(t)
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			err := SetLevel(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	resetLevel(t)
	var buf bytes.Buffer
	l := newLogger(&buf, "blog-server")
	require.NoError(t, SetLevel("warn"))

	l.Info().Msg("request completed")
	assert.Empty(t, buf.String())

	l.Warn().Msg("slow request")
	assert.Equal(t, "slow request", decodeLine(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsWithoutLeaking(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "blog-server")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("worker", "health").Logger()

	child.Info().Msg("probe")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "blog-server", entry["role"])
	assert.Equal(t, "health", entry["worker"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeLine(t, &buf), "worker")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("post created")

		assert.Equal(t, "req-1", decodeLine(t, &buf)["request_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		// zerolog hands out a disabled logger
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("request_id", "req-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("list posts")

	assert.Equal(t, "req-2", decodeLine(t, &buf)["request_id"])
}
