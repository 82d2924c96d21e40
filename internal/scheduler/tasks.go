// Package scheduler runs background jobs over asynq, currently the periodic
// warm of the NOMIS fetch cache.
package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskCacheWarm = "nomis.cache.warm"

// CacheWarmPayload identifies one warm run. Requested lets handlers log and
// skip stale runs that sat in the queue past their usefulness.
type CacheWarmPayload struct {
	Requested time.Time `json:"requested"`
}

func NewCacheWarmTask(payload CacheWarmPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCacheWarm, data), nil
}

func ParseCacheWarmPayload(task *asynq.Task) (CacheWarmPayload, error) {
	var payload CacheWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CacheWarmPayload{}, err
	}
	return payload, nil
}
