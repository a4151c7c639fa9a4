package domain

// ExternalAgent is one row of the Airtable Agents table after decoding.
type ExternalAgent struct {
	ID              string
	FullName        string
	Email           *string
	Phone           *string
	WhatsApp        *string
	Photo           string // URL or a "[Requiere ...]" placeholder marker
	Specializations []string
	Active          bool
}

type Agent struct {
	ID              string   `db:"id"`
	AirtableID      *string  `db:"airtable_id"`
	Slug            string   `db:"slug"`
	FirstName       string   `db:"first_name"`
	LastName        string   `db:"last_name"`
	Email           *string  `db:"email"`
	Phone           *string  `db:"phone"`
	WhatsApp        *string  `db:"whatsapp"`
	PhotoURL        *string  `db:"photo_url"`
	Specializations []string `db:"specializations"`
	IsActive        bool     `db:"is_active"`
}

// DisplayName is used in sync result details.
func (a *Agent) DisplayName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
