package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func debugLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestLogLayoutHooks(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogLayoutHooks(debugLogger(&buf))
	ctx := context.Background()

	h.OnArrangeStart(ctx, "masonry", 12)
	h.OnArrangeComplete(ctx, "masonry", 3*time.Millisecond)
	h.OnPlace(ctx, "free-flow", "branch")

	out := buf.String()
	for _, want := range []string{"arrange start", "arrange complete", "place", "masonry", "branch"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogStoreHooksErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	// Info level: debug lines are filtered, error lines are not.
	h := NewLogStoreHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	ctx := context.Background()

	h.OnLoad(ctx, "b1", nil)
	h.OnSave(ctx, "b1", 3, nil)
	if buf.Len() != 0 {
		t.Errorf("successful operations should log at debug level only, got:\n%s", buf.String())
	}

	h.OnLoad(ctx, "b1", errors.New("connection reset"))
	if !strings.Contains(buf.String(), "board load failed") {
		t.Errorf("load failure not logged:\n%s", buf.String())
	}
}

func TestNewLogHooksNilLogger(t *testing.T) {
	if NewLogLayoutHooks(nil).Logger == nil {
		t.Error("nil logger should fall back to default")
	}
	if NewLogStoreHooks(nil).Logger == nil {
		t.Error("nil logger should fall back to default")
	}
}
