package webhook

import (
	"atsconnect/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

const (
	// QueueWebhooks is the River queue deliveries run on.
	QueueWebhooks = "webhooks"
	// maxRetryIndex caps the exponent of the retry backoff.
	maxRetryIndex = 3
)

// DeliveryJobArgs contains the arguments of a delivery job submitted to River.
// The payload lives in the delivery row, the job only references it.
type DeliveryJobArgs struct {
	DeliveryID domain.DeliveryID `json:"delivery_id"`

	// maxAttempts is the total number of tries River makes, the first included.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the delivery worker.
func (args DeliveryJobArgs) Kind() string { return "webhook_delivery" }

// InsertOpts routes delivery jobs to the webhooks queue. A delivery has at most
// one job that is waiting or running, so its attempts never overlap. Finished
// jobs do not count, a delivery whose retries were exhausted can be retried.
func (args DeliveryJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueWebhooks,
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRetryable,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// RetryDelay returns how long to wait before the given retry (1-based):
// base, 2*base, 4*base. Later retries keep the last delay.
func RetryDelay(retry int, base time.Duration) time.Duration {
	retry = max(1, min(retry, maxRetryIndex))

	return base * time.Duration(1<<(retry-1))
}
