package sweepline

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	test.T(t, IntersectionPoints(MustParsePolylines("M0 0L2 2M0 2L2 0"), false), []Point{{1, 1}})
	test.That(t, strings.Contains(buf.String(), "sweep: begin"))
	test.That(t, strings.Contains(buf.String(), "sweep: intersection"))

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))
}
