package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
)

// fetchDocumentCmd loads the product document asynchronously. It is the only
// blocking operation the view performs and is never retried.
func fetchDocumentCmd(src catalog.Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		doc, err := catalog.Load(ctx, src)
		if err != nil {
			return DocumentFailedMsg{Err: err}
		}
		return DocumentLoadedMsg{Document: doc}
	}
}
