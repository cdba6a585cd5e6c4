package onesignal

// ExternalIDInput for the check-user-exists and view-player endpoints.
type ExternalIDInput struct {
	Body struct {
		ExternalID string `json:"external_id" minLength:"1" maxLength:"255" required:"true" doc:"Application-assigned user key" example:"user-42"`
	}
}

// MessagesInput for GET /onesignal/messages.
type MessagesInput struct {
	ID     string `query:"id"     doc:"Select a single message by id"`
	Limit  int    `query:"limit"  doc:"Maximum messages per page" minimum:"1" maximum:"50"`
	Offset int    `query:"offset" doc:"Listing offset"            minimum:"0"`
}
