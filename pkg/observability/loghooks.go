package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogLayoutHooks logs layout events at debug level.
// It is the hook implementation the server installs by default.
type LogLayoutHooks struct {
	Logger *log.Logger
}

// NewLogLayoutHooks creates layout hooks that log to the given logger.
// A nil logger falls back to the default logger.
func NewLogLayoutHooks(logger *log.Logger) *LogLayoutHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogLayoutHooks{Logger: logger}
}

func (h *LogLayoutHooks) OnArrangeStart(ctx context.Context, mode string, nodeCount int) {
	h.Logger.Debug("arrange start", "mode", mode, "nodes", nodeCount)
}

func (h *LogLayoutHooks) OnArrangeComplete(ctx context.Context, mode string, duration time.Duration) {
	h.Logger.Debug("arrange complete", "mode", mode, "duration", duration.Round(time.Microsecond))
}

func (h *LogLayoutHooks) OnPlace(ctx context.Context, mode, kind string) {
	h.Logger.Debug("place", "mode", mode, "kind", kind)
}

// LogStoreHooks logs storage events. Failures log at error level, successful
// operations at debug level.
type LogStoreHooks struct {
	Logger *log.Logger
}

// NewLogStoreHooks creates store hooks that log to the given logger.
// A nil logger falls back to the default logger.
func NewLogStoreHooks(logger *log.Logger) *LogStoreHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogStoreHooks{Logger: logger}
}

func (h *LogStoreHooks) OnLoad(ctx context.Context, boardID string, err error) {
	if err != nil {
		h.Logger.Error("board load failed", "board", boardID, "err", err)
		return
	}
	h.Logger.Debug("board loaded", "board", boardID)
}

func (h *LogStoreHooks) OnSave(ctx context.Context, boardID string, nodeCount int, err error) {
	if err != nil {
		h.Logger.Error("board save failed", "board", boardID, "err", err)
		return
	}
	h.Logger.Debug("board saved", "board", boardID, "nodes", nodeCount)
}

var (
	_ LayoutHooks = (*LogLayoutHooks)(nil)
	_ StoreHooks  = (*LogStoreHooks)(nil)
)
