// Package job runs background work on asynq, backed by Redis.
package job

import (
	"github.com/deppfellow/workout-api/internal/config"
	"github.com/deppfellow/workout-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService owns the asynq client used to enqueue tasks and the worker
// server that processes them.
type JobService struct {
	Client *asynq.Client

	server *asynq.Server

	logger *zerolog.Logger

	notifier AtletaNotifier
	notifyTo string
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client:   asynq.NewClient(redisOpt),
		server:   server,
		logger:   logger,
		notifyTo: cfg.Integration.NotificationEmail,
	}
}

// InitHandlers wires the dependencies task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.notifier = email.NewClient(cfg, logger)
}

// Mux registers every task handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAtletaCadastrado, j.handleAtletaCadastradoTask)
	return mux
}

// Start launches the worker. asynq.Server.Start does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
