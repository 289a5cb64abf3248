package tui

import (
	"github.com/MKhiriev/go-form-guard/models"
)

// NavigateTo asks the root model to switch pages.
type NavigateTo struct {
	Page string
}

type quitMsg struct{}

type submittedMsg struct {
	submission models.Submission
	err        error
}

type recentLoadedMsg struct {
	items []models.Submission
	err   error
}

type copiedMsg struct {
	id  string
	err error
}

const (
	pageForm   = "form"
	pageRecent = "recent"
)
