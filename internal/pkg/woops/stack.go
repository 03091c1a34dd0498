package woops

import (
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
)

// formatStack renders a sentry stack trace the way runtime/debug prints one.
// Sentry orders frames outermost first.
func formatStack(st *sentry.Stacktrace) string {
	if st == nil || len(st.Frames) == 0 {
		return ""
	}

	var b strings.Builder
	for i := len(st.Frames) - 1; i >= 0; i-- {
		f := st.Frames[i]
		name := f.Function
		if f.Module != "" {
			name = f.Module + "." + f.Function
		}
		path := f.AbsPath
		if path == "" {
			path = f.Filename
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", name, path, f.Lineno)
	}
	return b.String()
}
