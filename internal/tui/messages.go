package tui

import (
	"github.com/MKhiriev/ptp-tester/models"
)

type outcomeMsg struct {
	outcome models.DirectOutcome
}

type cardSavedMsg struct {
	entry models.CardEntry
	err   error
}

type apmSavedMsg struct {
	entry models.APMEntry
	err   error
}

type cardDeletedMsg struct {
	err error
}

type cardsReloadedMsg struct {
	err error
}

type prefsSavedMsg struct {
	err error
}

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
