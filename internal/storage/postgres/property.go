package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"listing_sync/internal/domain"
)

type PropertyStore struct {
	db *sqlx.DB
}

func NewPropertyStore(db *sqlx.DB) *PropertyStore {
	return &PropertyStore{db: db}
}

func (s *PropertyStore) FindIDByAirtableID(ctx context.Context, airtableID string) (string, bool, error) {
	return findID(ctx, GetExecutor(ctx, s.db),
		"SELECT id FROM properties WHERE airtable_id = $1 LIMIT 1", airtableID)
}

func (s *PropertyStore) Insert(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (
			id, airtable_id, slug, title, short_description, description,
			property_type, status, price, admin_fee, address, city, neighborhood,
			latitude, longitude, bedrooms, bathrooms, half_bathrooms, parking_spaces,
			area_m2, images, video_url, drone_url, virtual_tour_url, amenities, agent_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, propertyArgs(p)...)
	return describe(err)
}

func (s *PropertyStore) Update(ctx context.Context, p *domain.Property) error {
	query := `
		UPDATE properties SET
			airtable_id = $2,
			slug = $3,
			title = $4,
			short_description = $5,
			description = $6,
			property_type = $7,
			status = $8,
			price = $9,
			admin_fee = $10,
			address = $11,
			city = $12,
			neighborhood = $13,
			latitude = $14,
			longitude = $15,
			bedrooms = $16,
			bathrooms = $17,
			half_bathrooms = $18,
			parking_spaces = $19,
			area_m2 = $20,
			images = $21,
			video_url = $22,
			drone_url = $23,
			virtual_tour_url = $24,
			amenities = $25,
			agent_id = $26,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, propertyArgs(p)...)
	if err != nil {
		return describe(err)
	}
	return expectRow(res, "property", p.ID)
}

func propertyArgs(p *domain.Property) []any {
	return []any{
		p.ID,
		p.AirtableID,
		p.Slug,
		p.Title,
		p.ShortDescription,
		p.Description,
		p.PropertyType,
		p.Status,
		p.Price,
		p.AdminFee,
		p.Address,
		p.City,
		p.Neighborhood,
		p.Latitude,
		p.Longitude,
		p.Bedrooms,
		p.Bathrooms,
		p.HalfBathrooms,
		p.ParkingSpaces,
		p.AreaM2,
		pq.Array(p.Images),
		p.VideoURL,
		p.DroneURL,
		p.VirtualTourURL,
		pq.Array(p.Amenities),
		p.AgentID,
	}
}
