package airtable

import "listing_sync/internal/domain"

// DecodeAgent reads an Agents table row. Column names follow the base's
// English headers with the Spanish ones as fallback.
func DecodeAgent(r Record) domain.ExternalAgent {
	f := fieldBag(r.Fields)

	return domain.ExternalAgent{
		ID:              r.ID,
		FullName:        f.str("Full_Name", "Name", "Nombre_Completo"),
		Email:           f.optStr("Email", "Correo"),
		Phone:           f.optStr("Phone", "Telefono"),
		WhatsApp:        f.optStr("WhatsApp", "Whatsapp"),
		Photo:           f.str("Photo", "Foto"),
		Specializations: f.list("Specialization", "Specializations", "Especializacion"),
		Active:          f.boolean(true, "Active", "Activo", "Estado"),
	}
}

// DecodeProperty reads a Properties table row.
func DecodeProperty(r Record) domain.ExternalProperty {
	f := fieldBag(r.Fields)

	return domain.ExternalProperty{
		ID:               r.ID,
		Title:            f.str("Title", "Titulo"),
		ShortDescription: f.str("Short_Description", "Descripcion_Corta"),
		Description:      f.str("Full_Description", "Description", "Descripcion"),
		TransactionType:  f.str("Transaction_Type", "Tipo_Transaccion", "Tipo_Negocio"),
		PropertyType:     f.str("Property_Type", "Tipo_Inmueble"),
		Price:            f.num("Price", "Precio"),
		AdminFee:         f.num("Admin_Fee", "Administracion"),
		Address:          f.str("Address", "Direccion"),
		City:             f.str("City", "Ciudad"),
		Neighborhood:     f.str("Neighborhood", "Barrio"),
		Latitude:         f.num("Latitude", "Latitud"),
		Longitude:        f.num("Longitude", "Longitud"),
		Bedrooms:         f.num("Bedrooms", "Habitaciones"),
		Bathrooms:        f.num("Bathrooms", "Banos"),
		HalfBathrooms:    f.num("Half_Bathrooms", "Medios_Banos"),
		ParkingSpaces:    f.num("Parking", "Parking_Spaces", "Parqueaderos"),
		AreaM2:           f.num("Area_m2", "Area"),
		MainPhoto:        f.str("Main_Photo", "Foto_Principal"),
		ExtraPhotos: [3]string{
			f.str("Extra_Photo_1", "Foto_Extra_1"),
			f.str("Extra_Photo_2", "Foto_Extra_2"),
			f.str("Extra_Photo_3", "Foto_Extra_3"),
		},
		VideoURL:       f.str("Video_URL", "Video"),
		DroneURL:       f.str("Drone_URL", "Video_Dron"),
		VirtualTourURL: f.str("Virtual_Tour_URL", "Tour_Virtual"),
		Amenities:      f.list("Amenities", "Amenidades"),
		AgentIDs:       f.list("Agent", "Agente"),
	}
}
