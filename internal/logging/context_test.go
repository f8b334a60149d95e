package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	FromContext(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), `"message":"hello"`) {
		t.Fatalf("logger did not round-trip through context: %s", buf.String())
	}
}

func TestFromContextWithoutLogger(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got level %v", log.GetLevel())
	}
}

func TestWithComponentAndWindowTagEvents(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	ctx = WithComponent(ctx, "attach")
	ctx = WithWindow(ctx, 42)
	FromContext(ctx).Info().Msg("tagged")

	out := buf.String()
	for _, want := range []string{`"component":"attach"`, `"handle":42`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestWithAddsArbitraryFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	ctx = With(ctx, map[string]any{"role": "main"})
	FromContext(ctx).Info().Msg("tagged")

	if !strings.Contains(buf.String(), `"role":"main"`) {
		t.Fatalf("missing role field in %s", buf.String())
	}
}

func TestNewFromEnvHonorsOverrides(t *testing.T) {
	t.Setenv("CHROMELESS_LOG_LEVEL", "error")
	t.Setenv("CHROMELESS_LOG_FORMAT", "json")

	log := NewFromEnv()
	if log.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got %v", log.GetLevel())
	}
}
