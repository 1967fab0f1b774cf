package service

import (
	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/config"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/schema"
	"github.com/MKhiriev/go-pet-tracker/internal/store"
	"github.com/MKhiriev/go-pet-tracker/internal/syncstore"
)

type ClientServices struct {
	Session    SessionService
	Notebooks  NotebookService
	Sharing    SharingService
	ProfileJob ProfileRefreshJob
}

// NewClientServices wires the session manager and one store per entity
// family. Every entity cache is reset whenever tokens is cleared, which
// covers logout and a credential rejected by the backend.
func NewClientServices(gateway adapter.Gateway, tokens store.TokenStore, cfg config.ClientSync, log *logger.Logger) *ClientServices {
	opts := []syncstore.Option{
		syncstore.WithLogger(log),
		syncstore.WithNormalizer(apierror.NewNormalizer(schema.Default())),
	}
	if cfg.RollbackOnFailure {
		opts = append(opts, syncstore.WithRollbackOnFailure())
	}

	session := NewClientSessionService(gateway, tokens)
	notebooks := NewClientNotebookService(gateway, opts...)
	sharing := NewClientSharingService(gateway, opts...)

	tokens.OnClear(notebooks.Reset)
	tokens.OnClear(sharing.Reset)

	return &ClientServices{
		Session:    session,
		Notebooks:  notebooks,
		Sharing:    sharing,
		ProfileJob: NewProfileRefreshJob(session),
	}
}
