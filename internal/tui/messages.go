package tui

import "github.com/alexisbeaulieu97/showcase/internal/catalog"

// DocumentLoadedMsg carries a fetched, validated product document.
type DocumentLoadedMsg struct {
	Document *catalog.Document
}

// DocumentFailedMsg reports that the product document could not be loaded.
type DocumentFailedMsg struct {
	Err error
}
