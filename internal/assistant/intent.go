package assistant

// Intent is the normalized classification of what an inbound message requests.
// Exactly one intent is produced per message by the Extractor and consumed
// once by the Dispatcher.
type Intent interface{ isIntent() }

// BookAppointment carries the booking fields exactly as the model emitted
// them. Validation is deferred to the dispatcher.
type BookAppointment struct {
	Name string
	Date string
}

// ListAppointments requests the current appointment listing.
type ListAppointments struct{}

// Chat relays a conversational reply verbatim.
type Chat struct {
	Reply string
}

// Unknown is the fallback when the model's declared action is null or
// unrecognized.
type Unknown struct {
	Reply string
}

func (BookAppointment) isIntent()  {}
func (ListAppointments) isIntent() {}
func (Chat) isIntent()             {}
func (Unknown) isIntent()          {}
