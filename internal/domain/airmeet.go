package domain

// Registrant is the payload of an Airmeet registration-created webhook
type Registrant struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	AirmeetName      string `json:"airmeetName"`
	RegistrationTime string `json:"registrationTime"`
	AirmeetID        string `json:"airmeetId"`
}

// EventCreated is the payload of an Airmeet event-created webhook
type EventCreated struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Timezone       string `json:"timezone"`
	LongDesc       string `json:"long_desc"`
	AirmeetID      string `json:"airmeet_id"`
	OrganiserName  string `json:"organiser_name"`
	OrganiserEmail string `json:"organiser_email"`
	OrganiserURL   string `json:"organiser_url"`
	OrganiserIntro string `json:"organiser_intro"`
}

// EventInfo is the side-channel blob embedded in an event custom object's
// tnt__other_info field. The matcher parses it back out to link a
// registration to its parent event by AirmeetID.
type EventInfo struct {
	AirmeetID      string `json:"airmeetId"`
	OrganiserName  string `json:"organiserName"`
	OrganiserEmail string `json:"organiserEmail"`
	OrganiserURL   string `json:"organiserUrl"`
	OrganiserIntro string `json:"organiserIntro"`
}
