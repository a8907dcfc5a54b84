package handler

import (
	"errors"

	"github.com/holamundo/registry-api/internal/api/metrics"
	"github.com/holamundo/registry-api/internal/core/domain"
)

func observeCreate(resource string, replayed bool, warnings int) {
	if replayed {
		metrics.IdempotentReplaysTotal.WithLabelValues(resource).Inc()
		return
	}
	metrics.RecordsCreatedTotal.WithLabelValues(resource).Inc()
	if warnings > 0 {
		metrics.ValidationWarningsTotal.WithLabelValues(resource).Add(float64(warnings))
	}
}

func observeFailure(resource string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		metrics.ValidationFailuresTotal.WithLabelValues(resource).Inc()
	}
}
