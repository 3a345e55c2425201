package models

// MediaEvent is published to Kafka when a media record is created or
// removed.
type MediaEvent struct {
	EventID     string `json:"event_id"`
	Timestamp   int64  `json:"timestamp"`
	Operation   string `json:"operation"` // "captured" or "deleted"
	Kind        string `json:"kind"`      // "images" or "videos"
	MediaID     string `json:"media_id"`
	Filename    string `json:"filename"`
	OwnerUserID string `json:"owner_user_id"`
}
