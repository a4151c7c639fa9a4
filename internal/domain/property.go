package domain

// Property types accepted by the listings schema.
const (
	PropertyTypeApartment   = "apartamento"
	PropertyTypeHouse       = "casa"
	PropertyTypeOffice      = "oficina"
	PropertyTypeCommercial  = "local"
	PropertyTypeLot         = "lote"
	PropertyTypeFarm        = "finca"
	PropertyTypeWarehouse   = "bodega"
	PropertyTypeConsultancy = "consultorio"
)

// Listing statuses accepted by the listings schema.
const (
	StatusSale        = "venta"
	StatusRent        = "arriendo"
	StatusSaleAndRent = "venta_arriendo"
)

// ExternalProperty is one row of the Airtable Properties table after decoding.
// Optional numeric fields are nil when absent or not numeric in the source.
type ExternalProperty struct {
	ID               string
	Title            string
	ShortDescription string
	Description      string
	TransactionType  string
	PropertyType     string
	Price            *float64
	AdminFee         *float64
	Address          string
	City             string
	Neighborhood     string
	Latitude         *float64
	Longitude        *float64
	Bedrooms         *float64
	Bathrooms        *float64
	HalfBathrooms    *float64
	ParkingSpaces    *float64
	AreaM2           *float64
	MainPhoto        string
	ExtraPhotos      [3]string
	VideoURL         string
	DroneURL         string
	VirtualTourURL   string
	Amenities        []string
	AgentIDs         []string // linked Airtable agent record IDs
}

type Property struct {
	ID               string   `db:"id"`
	AirtableID       *string  `db:"airtable_id"`
	Slug             string   `db:"slug"`
	Title            string   `db:"title"`
	ShortDescription *string  `db:"short_description"`
	Description      *string  `db:"description"`
	PropertyType     string   `db:"property_type"`
	Status           string   `db:"status"`
	Price            float64  `db:"price"`
	AdminFee         float64  `db:"admin_fee"`
	Address          *string  `db:"address"`
	City             *string  `db:"city"`
	Neighborhood     *string  `db:"neighborhood"`
	Latitude         *float64 `db:"latitude"`
	Longitude        *float64 `db:"longitude"`
	Bedrooms         int      `db:"bedrooms"`
	Bathrooms        int      `db:"bathrooms"`
	HalfBathrooms    int      `db:"half_bathrooms"`
	ParkingSpaces    int      `db:"parking_spaces"`
	AreaM2           float64  `db:"area_m2"`
	Images           []string `db:"images"`
	VideoURL         *string  `db:"video_url"`
	DroneURL         *string  `db:"drone_url"`
	VirtualTourURL   *string  `db:"virtual_tour_url"`
	Amenities        []string `db:"amenities"`
	AgentID          *string  `db:"agent_id"`
}
