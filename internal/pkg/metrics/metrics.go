package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters exposed at /metrics.
var (
	// ApplicationsCreated counts successful placement applications.
	ApplicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placehub_applications_created_total",
		Help: "Number of placement applications successfully created.",
	})

	// ApplicationsRejected counts application attempts rejected by a
	// precondition, labelled by error kind.
	ApplicationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placehub_applications_rejected_total",
		Help: "Number of placement application attempts rejected by a precondition.",
	}, []string{"reason"})

	// StatusUpdates counts placement status transitions by target status.
	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placehub_status_updates_total",
		Help: "Number of placement status updates by new status.",
	}, []string{"status"})

	// EligibilityChecks counts eligible-drives computations.
	EligibilityChecks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placehub_eligibility_checks_total",
		Help: "Number of eligible-drives computations performed.",
	})

	// ResumeUploads counts resume uploads by outcome.
	ResumeUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "placehub_resume_uploads_total",
		Help: "Number of resume upload attempts by outcome.",
	}, []string{"outcome"})
)
