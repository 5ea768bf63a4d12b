package payload

type PingResponse struct {
	Message string      `json:"message"`
	Date    string      `json:"date"`
	Time    string      `json:"time"`
	Warmer  *WarmStatus `json:"warmer,omitempty"`
}

// WarmStatus reports the last cache warm-up run.
type WarmStatus struct {
	StartedAt  string `json:"started_at"`
	DurationMS int64  `json:"duration_ms"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
}
