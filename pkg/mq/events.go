package mq

const (
	VideoProcessExchange = "video_process_events"
	VideoProcessQueue    = "video_process_queue"

	UserCascadeExchange = "user_cascade_events"
	UserCascadeQueue    = "user_cascade_queue"
)

// UploadEvent is published after a video record is created in
// status=processing; the processor worker picks it up and drives the
// processing -> completed/failed transition.
type UploadEvent struct {
	VideoID   int64  `json:"video_id"`
	UserID    int64  `json:"user_id"`
	ObjectKey string `json:"object_key"`
	FileSize  int64  `json:"file_size"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}

// CascadeEvent asks the worker to remove everything a deleted user owned.
// Account deletion fan-out is deliberately asynchronous; the api only
// deletes the user row.
type CascadeEvent struct {
	UserID    int64  `json:"user_id"`
	DeletedBy int64  `json:"deleted_by"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}
