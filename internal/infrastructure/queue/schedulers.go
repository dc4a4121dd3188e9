package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"caminodevida-backend/internal/shared"
	"caminodevida-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerPruneChatSessionsJob()
}

// Prune idle chat sessions daily at 3 AM UTC. Redis TTLs already expire
// individual sessions; this job sweeps orphaned session index entries.
func (s *Scheduler) registerPruneChatSessionsJob() error {
	payload, err := json.Marshal(map[string]interface{}{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePruneChatSessions, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register PruneChatSessions job", err)
		return err
	}

	logger.Info("Registered PruneChatSessions: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Run() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
