package mapper

import (
	"strings"

	"listing_sync/internal/domain"
)

// MapProperty converts an Airtable property into the properties row.
//
// agentIDs maps Airtable agent record IDs to internal agent IDs. The first
// linked agent is resolved through it; a nil map, a missing link or an
// unknown ID all leave AgentID nil.
func MapProperty(ext domain.ExternalProperty, agentIDs map[string]string) domain.Property {
	airtableID := ext.ID

	p := domain.Property{
		AirtableID:       &airtableID,
		Slug:             Slug(ext.Title, ext.ID),
		Title:            strings.TrimSpace(ext.Title),
		ShortDescription: stringOrNil(ext.ShortDescription),
		Description:      stringOrNil(ext.Description),
		PropertyType:     NormalizePropertyType(ext.PropertyType),
		Status:           NormalizeStatus(ext.TransactionType),
		Price:            floatOrZero(ext.Price),
		AdminFee:         floatOrZero(ext.AdminFee),
		Address:          stringOrNil(ext.Address),
		City:             stringOrNil(ext.City),
		Neighborhood:     stringOrNil(ext.Neighborhood),
		Latitude:         floatOrNil(ext.Latitude),
		Longitude:        floatOrNil(ext.Longitude),
		Bedrooms:         intOrZero(ext.Bedrooms),
		Bathrooms:        intOrZero(ext.Bathrooms),
		HalfBathrooms:    intOrZero(ext.HalfBathrooms),
		ParkingSpaces:    intOrZero(ext.ParkingSpaces),
		AreaM2:           floatOrZero(ext.AreaM2),
		Images:           CollectImages(ext.MainPhoto, ext.ExtraPhotos[:]...),
		VideoURL:         stringOrNil(ext.VideoURL),
		DroneURL:         stringOrNil(ext.DroneURL),
		VirtualTourURL:   stringOrNil(ext.VirtualTourURL),
		Amenities:        NormalizeAmenities(ext.Amenities),
	}

	if len(ext.AgentIDs) > 0 && agentIDs != nil {
		if id, ok := agentIDs[ext.AgentIDs[0]]; ok {
			p.AgentID = &id
		}
	}

	return p
}
