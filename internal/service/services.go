package service

import (
	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/mail"
	"github.com/MKhiriev/hd-notes/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, mailSender mail.Sender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, mailSender, cfg.App, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
