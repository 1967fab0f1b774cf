package syncstore

import (
	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
)

type options struct {
	rollback   bool
	normalizer *apierror.Normalizer
	logger     *logger.Logger
}

// Option configures a [Store].
type Option func(*options)

// WithRollbackOnFailure restores a key to its pre-operation value when a
// mutation fails. Without it the optimistic value is kept and only the error
// is recorded.
func WithRollbackOnFailure() Option {
	return func(o *options) { o.rollback = true }
}

// WithNormalizer sets the normalizer applied to errors returned by loaders
// and remote calls. Errors that are already normalized pass through.
func WithNormalizer(n *apierror.Normalizer) Option {
	return func(o *options) { o.normalizer = n }
}

// WithLogger sets the logger failed operations are reported to.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
