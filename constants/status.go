package constants

// JobStatus is the canonical status for a batch extraction job.
type JobStatus string

// Stable values (store these exact strings in output).
const (
	JobStatusQueued      JobStatus = "QUEUED"       // waiting for a worker
	JobStatusRunning     JobStatus = "RUNNING"      // in progress
	JobStatusExtracted   JobStatus = "EXTRACTED"    // pipeline completed, validation passed
	JobStatusNeedsReview JobStatus = "NEEDS_REVIEW" // completed but below the confidence gate
	JobStatusFailed      JobStatus = "FAILED"       // terminal failure
)
