package metrics

import (
	"expvar"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Expvar metrics
	ReminderSentCount        = expvar.NewInt("reminder_sent_count")
	AnnouncementSentCount    = expvar.NewInt("announcement_sent_count")
	DiscordMessageRecieved   = expvar.NewInt("discord_message_recieved")
	DiscordMessageSent       = expvar.NewInt("discord_message_sent")
	CustomReminderRegistered = expvar.NewInt("custom_reminder_registered")
	CustomReminderRejected   = expvar.NewInt("custom_reminder_rejected")

	// Prometheus metrics with labels
	DiscordCommandTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_command_total",
			Help: "Total number of Discord commands invoked by command type",
		},
		[]string{"command"},
	)

	DiscordCommandErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_command_errors",
			Help: "Total number of Discord command errors by command type",
		},
		[]string{"command"},
	)

	DiscordCommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discord_command_duration_seconds",
			Help:    "Duration of Discord command execution in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	ScheduledSendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_send_total",
			Help: "Total number of scheduled sends by kind (reminder, announcement) and success",
		},
		[]string{"kind", "success"},
	)
)

type Server struct {
	*http.Server
}

func SetupServer() *Server {

	// pprof is setup by importing the net/http/pprof package
	server := &http.Server{
		Addr:         ":6060",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// setup expvar cache
	ReminderSentCount.Set(0)
	AnnouncementSentCount.Set(0)
	DiscordMessageRecieved.Set(0)
	DiscordMessageSent.Set(0)
	CustomReminderRegistered.Set(0)
	CustomReminderRejected.Set(0)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewExpvarCollector(
			map[string]*prometheus.Desc{
				"reminder_sent_count":        prometheus.NewDesc("reminder_sent_count", "number of scheduled reminders posted", nil, nil),
				"announcement_sent_count":    prometheus.NewDesc("announcement_sent_count", "number of scheduled announcements posted", nil, nil),
				"discord_message_recieved":   prometheus.NewDesc("discord_message_recieved", "number of times discord received a message", nil, nil),
				"discord_message_sent":       prometheus.NewDesc("discord_message_sent", "number of times discord sent a message", nil, nil),
				"custom_reminder_registered": prometheus.NewDesc("custom_reminder_registered", "number of custom reminders registered", nil, nil),
				"custom_reminder_rejected":   prometheus.NewDesc("custom_reminder_rejected", "number of custom reminder requests rejected for bad input", nil, nil),
			},
		),
		DiscordCommandTotal,
		DiscordCommandErrors,
		DiscordCommandDuration,
		ScheduledSendTotal,
	)

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.HandleFunc("/healthz", healthzHandler)
	return &Server{server}
}

// healthzHandler returns a simple health check response
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Run() {
	_ = s.ListenAndServe()
}
