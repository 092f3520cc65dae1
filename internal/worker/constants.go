package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// Log messages - autoclicker production
const (
	LogMsgTickStarted      = "Autoclicker tick started"
	LogMsgTickOwnersFailed = "Failed to list autoclicker owners"
	LogMsgProductionFailed = "Autoclicker production failed"
)

// DefaultJobTimeout bounds a single job's run
const DefaultJobTimeout = 10 * time.Second
