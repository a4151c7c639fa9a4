package mapper

import (
	"strings"

	"listing_sync/internal/domain"
)

// MapAgent converts an Airtable agent into the agents row. The returned
// agent carries no internal ID; the reconciler assigns or reuses one.
func MapAgent(ext domain.ExternalAgent) domain.Agent {
	first, last := SplitFullName(ext.FullName)

	var email *string
	if ext.Email != nil {
		if e := strings.ToLower(strings.TrimSpace(*ext.Email)); e != "" {
			email = &e
		}
	}

	phone := trimmedOrNil(ext.Phone)
	whatsapp := trimmedOrNil(ext.WhatsApp)
	if whatsapp == nil {
		whatsapp = phone
	}

	var photo *string
	if !IsPlaceholder(ext.Photo) {
		photo = stringOrNil(ext.Photo)
	}

	specializations := make([]string, 0, len(ext.Specializations))
	for _, s := range ext.Specializations {
		if s = strings.TrimSpace(s); s != "" {
			specializations = append(specializations, s)
		}
	}

	airtableID := ext.ID

	return domain.Agent{
		AirtableID:      &airtableID,
		Slug:            Slug(first+" "+last, ext.ID),
		FirstName:       first,
		LastName:        last,
		Email:           email,
		Phone:           phone,
		WhatsApp:        whatsapp,
		PhotoURL:        photo,
		Specializations: specializations,
		IsActive:        ext.Active,
	}
}
