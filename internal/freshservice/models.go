package freshservice

// ticketResponse mirrors the GET ticket payload. Only the custom field
// driving the DXDB sync check is decoded; everything else is ignored.
type ticketResponse struct {
	Ticket struct {
		CustomFields struct {
			SendToDXDBStatusCode *int `json:"send_to_dxdb_statuscode"`
		} `json:"custom_fields"`
	} `json:"ticket"`
}

// updatePayload is the PUT body that triggers the MC workflow updating
// DXDB for a ticket.
type updatePayload struct {
	CustomFields struct {
		TriggerMCWorkflow bool `json:"trigger_mc_workflow_to_update_dxdb_via_api"`
	} `json:"custom_fields"`
}

// Ticket holds the fields of a fetched ticket that the updater cares about.
type Ticket struct {
	ID string
	// SendToDXDBStatusCode is nil when the custom field is absent or null.
	SendToDXDBStatusCode *int
}

// SyncComplete reports whether the downstream DXDB sync already finished
// for this ticket.
func (t *Ticket) SyncComplete() bool {
	return t.SendToDXDBStatusCode != nil && *t.SendToDXDBStatusCode == 200
}
