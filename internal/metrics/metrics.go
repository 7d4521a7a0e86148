package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cobalt client metrics
var (
	// ProcessRequestsTotal counts process calls by resulting response status
	// ("tunnel", "redirect", "picker", "error").
	ProcessRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cobalt_process_requests_total",
			Help: "Total number of process requests by response status.",
		},
		[]string{"status"},
	)

	// MediaDownloadsTotal counts media payload fetches by outcome.
	MediaDownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cobalt_media_downloads_total",
			Help: "Total number of media downloads.",
		},
		[]string{"status"},
	)

	// MediaDownloadBytesTotal counts the bytes of media payload fetched.
	MediaDownloadBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cobalt_media_download_bytes_total",
			Help: "Total number of media payload bytes downloaded.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ProcessRequestsTotal,
		MediaDownloadsTotal,
		MediaDownloadBytesTotal,
	)
}
