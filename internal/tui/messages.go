package tui

import (
	"github.com/MKhiriev/hd-notes/models"
)

type otpSentMsg struct {
	email string
	err   error
}

type verifiedMsg struct {
	user models.User
	err  error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
