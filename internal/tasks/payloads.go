package tasks

import "time"

// Task names
const (
	SendEmail   = "send_email"
	IndexJob    = "index_job"
	RemoveJob   = "remove_job"
	ImportFeed  = "import_feed"
	RecordClick = "record_click"
)

// SendEmailPayload is a fully rendered message
type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Event   string `json:"event,omitempty"`
}

// IndexJobPayload names a posted job to push into the search index
type IndexJobPayload struct {
	GUID string `json:"guid"`
}

// RemoveJobPayload names a job to delete from the search index
type RemoveJobPayload struct {
	GUID string `json:"guid"`
}

// ImportFeedPayload points at a feed file for one business unit
type ImportFeedPayload struct {
	BUID int    `json:"buid"`
	Path string `json:"path"`
}

// RecordClickPayload is one redirect click
type RecordClickPayload struct {
	GUID       string    `json:"guid"`
	BUID       int       `json:"buid"`
	ViewSource int       `json:"vs"`
	URL        string    `json:"url"`
	Referrer   string    `json:"referrer"`
	UserAgent  string    `json:"user_agent"`
	IP         string    `json:"ip"`
	At         time.Time `json:"at"`
}
