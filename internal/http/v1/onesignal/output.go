package onesignal

import "encoding/json"

// CheckUserData is the response body for POST /onesignal/check-user-exists.
type CheckUserData struct {
	Success bool            `json:"success" doc:"Whether the lookup completed"       example:"true"`
	Exists  bool            `json:"exists"  doc:"Whether the external id is known"   example:"true"`
	Data    json.RawMessage `json:"data"    doc:"Raw provider payload"`
}

// CheckUserOutput is the response wrapper for POST /onesignal/check-user-exists.
type CheckUserOutput struct {
	Body CheckUserData
}

// ViewPlayerData is the response body for POST /onesignal/view-player.
type ViewPlayerData struct {
	Subscribed bool            `json:"subscribed" doc:"Whether any device subscription is enabled" example:"false"`
	Data       json.RawMessage `json:"data"       doc:"Raw provider payload"`
}

// ViewPlayerOutput is the response wrapper for POST /onesignal/view-player.
type ViewPlayerOutput struct {
	Body ViewPlayerData
}

// PassthroughOutput wraps a raw provider payload returned unchanged.
type PassthroughOutput struct {
	Body json.RawMessage
}
