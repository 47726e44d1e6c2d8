package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"padoo/config"
	"padoo/services/rotation"

	"github.com/hibiken/asynq"
)

const TypeQueueInit = "rotation:init"

type queueInitPayload struct {
	Date string `json:"date"`
}

// InitQueueWorker runs the async worker and the daily scheduler that
// pre-initializes each day's rotation queue before opening. InitQueue is
// idempotent, so a task firing for an already-created date is a no-op.
func InitQueueWorker(rotationSvc rotation.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeQueueInit, handleQueueInitTask(rotationSvc))

	go func() {
		log.Println("[QueueInitWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[QueueInitWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.Local,
	})
	// The payload carries no date; the handler resolves "today" when it runs,
	// so a task delayed past midnight still initializes the right day.
	task := asynq.NewTask(TypeQueueInit, nil)
	if _, err := scheduler.Register(config.AppConfig.QueueInitCronSpec, task); err != nil {
		log.Printf("[QueueInitWorker] failed to register cron task: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[QueueInitWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleQueueInitTask(rotationSvc rotation.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		date := time.Now().Format("2006-01-02")
		if len(task.Payload()) > 0 {
			var p queueInitPayload
			if err := json.Unmarshal(task.Payload(), &p); err == nil && p.Date != "" {
				date = p.Date
			}
		}

		queue, err := rotationSvc.InitQueue(date)
		if err != nil {
			log.Printf("[QueueInitWorker] failed to initialize queue for %s: %v", date, err)
			return err
		}
		log.Printf("[QueueInitWorker] queue ready for %s (%d staff)", date, len(queue.StaffList))
		return nil
	}
}
