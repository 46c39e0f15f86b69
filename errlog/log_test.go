package errlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogAccumulatesBySeverity(t *testing.T) {
	t.Parallel()

	l := New()
	l.Warn("unknown local tag skipped", nil)
	l.Error("unparsed field retained", nil)
	l.Fatal("multiple preface sets", errors.New("boom"))

	require.Equal(t, 3, l.NumEntries())
	require.Equal(t, 1, l.NumFatal())
	require.Equal(t, WARN, l.Entries()[0].Severity)
	require.Equal(t, FATAL, l.Entries()[2].Severity)
}

func TestNumFatalDiffing(t *testing.T) {
	t.Parallel()

	l := New()
	l.Warn("a", nil)
	before := l.NumFatal()
	l.Fatal("b", nil)
	after := l.NumFatal()

	require.Equal(t, 0, before)
	require.Equal(t, 1, after-before)
}
