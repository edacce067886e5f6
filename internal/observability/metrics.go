// Package observability defines application-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_users_registered_total",
		Help: "Total number of successful user registrations",
	})

	// BlogsCreated counts successful blog post creations.
	BlogsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_blogs_created_total",
		Help: "Total number of blog posts created",
	})

	// ImageUploadBytes records the size of images relocated to the media host.
	ImageUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwell_image_upload_bytes",
		Help:    "Size in bytes of images relocated to the media host",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)
