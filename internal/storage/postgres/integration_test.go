//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"listing_sync/internal/domain"
	"listing_sync/internal/testutil"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_agents.up.sql"),
			filepath.Join(migrationsPath, "002_add_agents_airtable_id.up.sql"),
			filepath.Join(migrationsPath, "003_create_properties.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM properties")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM agents")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) agentBySlug(slug string) (*domain.Agent, error) {
	var a domain.Agent
	err := s.db.QueryRowxContext(s.ctx, `
		SELECT id, airtable_id, slug, first_name, last_name, email, phone,
			whatsapp, photo_url, specializations, is_active
		FROM agents
		WHERE slug = $1`, slug).Scan(
		&a.ID, &a.AirtableID, &a.Slug, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.WhatsApp, &a.PhotoURL, pq.Array(&a.Specializations), &a.IsActive,
	)
	return &a, err
}

func (s *PostgresIntegrationSuite) propertyBySlug(slug string) (*domain.Property, error) {
	var p domain.Property
	err := s.db.QueryRowxContext(s.ctx, `
		SELECT id, airtable_id, slug, title, short_description, description,
			property_type, status, price, admin_fee, address, city, neighborhood,
			latitude, longitude, bedrooms, bathrooms, half_bathrooms, parking_spaces,
			area_m2, images, video_url, drone_url, virtual_tour_url, amenities, agent_id
		FROM properties
		WHERE slug = $1`, slug).Scan(
		&p.ID, &p.AirtableID, &p.Slug, &p.Title, &p.ShortDescription, &p.Description,
		&p.PropertyType, &p.Status, &p.Price, &p.AdminFee, &p.Address, &p.City, &p.Neighborhood,
		&p.Latitude, &p.Longitude, &p.Bedrooms, &p.Bathrooms, &p.HalfBathrooms, &p.ParkingSpaces,
		&p.AreaM2, pq.Array(&p.Images), &p.VideoURL, &p.DroneURL, &p.VirtualTourURL,
		pq.Array(&p.Amenities), &p.AgentID,
	)
	return &p, err
}

func (s *PostgresIntegrationSuite) newAgent(airtableID, slug string) *domain.Agent {
	return &domain.Agent{
		ID:              uuid.NewString(),
		AirtableID:      testutil.Ptr(airtableID),
		Slug:            slug,
		FirstName:       "María",
		LastName:        "López",
		Email:           testutil.Ptr("maria@x.co"),
		Phone:           testutil.Ptr("+57 300"),
		WhatsApp:        testutil.Ptr("+57 300"),
		Specializations: []string{"Ventas"},
		IsActive:        true,
	}
}

func (s *PostgresIntegrationSuite) TestAgentStore_InsertAndFind() {
	store := NewAgentStore(s.db)
	agent := s.newAgent("recA1", "maria-lopez-recA1")

	s.Require().NoError(store.Insert(s.ctx, agent))

	id, found, err := store.FindIDByAirtableID(s.ctx, "recA1")
	s.NoError(err)
	s.True(found)
	s.Equal(agent.ID, id)

	got, err := s.agentBySlug("maria-lopez-recA1")
	s.Require().NoError(err)
	s.Equal([]string{"Ventas"}, got.Specializations)
	s.Nil(got.PhotoURL)
}

func (s *PostgresIntegrationSuite) TestAgentStore_FindMissing() {
	store := NewAgentStore(s.db)

	_, found, err := store.FindIDByAirtableID(s.ctx, "recNope")
	s.NoError(err)
	s.False(found)

	_, found, err = store.FindIDByEmail(s.ctx, "nobody@x.co")
	s.NoError(err)
	s.False(found)
}

func (s *PostgresIntegrationSuite) TestAgentStore_FindByEmailIgnoresCase() {
	store := NewAgentStore(s.db)
	agent := s.newAgent("recA1", "maria-lopez-recA1")
	agent.Email = testutil.Ptr("Maria@X.co")
	s.Require().NoError(store.Insert(s.ctx, agent))

	id, found, err := store.FindIDByEmail(s.ctx, "maria@x.co")
	s.NoError(err)
	s.True(found)
	s.Equal(agent.ID, id)
}

func (s *PostgresIntegrationSuite) TestAgentStore_UpdateKeepsUnmappedColumns() {
	store := NewAgentStore(s.db)
	agent := s.newAgent("recA1", "maria-lopez-recA1")
	s.Require().NoError(store.Insert(s.ctx, agent))

	_, err := s.db.ExecContext(s.ctx, "UPDATE agents SET bio = 'hand written' WHERE id = $1", agent.ID)
	s.Require().NoError(err)

	agent.FirstName = "Mariana"
	agent.Slug = "mariana-lopez-recA1"
	s.Require().NoError(store.Update(s.ctx, agent))

	var row struct {
		FirstName string `db:"first_name"`
		Bio       string `db:"bio"`
	}
	err = s.db.GetContext(s.ctx, &row, "SELECT first_name, bio FROM agents WHERE id = $1", agent.ID)
	s.NoError(err)
	s.Equal("Mariana", row.FirstName)
	s.Equal("hand written", row.Bio)
}

func (s *PostgresIntegrationSuite) TestAgentStore_UpdateMissingRow() {
	store := NewAgentStore(s.db)

	err := store.Update(s.ctx, s.newAgent("recA1", "maria-lopez-recA1"))
	s.True(errors.Is(err, ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestAgentStore_DuplicateSlug() {
	store := NewAgentStore(s.db)
	s.Require().NoError(store.Insert(s.ctx, s.newAgent("recA1", "same-slug")))

	err := store.Insert(s.ctx, s.newAgent("recA2", "same-slug"))
	s.Error(err)
	s.Contains(err.Error(), "unique constraint")
}

func (s *PostgresIntegrationSuite) newProperty(airtableID, slug string) *domain.Property {
	return &domain.Property{
		ID:            uuid.NewString(),
		AirtableID:    testutil.Ptr(airtableID),
		Slug:          slug,
		Title:         "Apartamento en El Poblado",
		PropertyType:  domain.PropertyTypeApartment,
		Status:        domain.StatusSale,
		Price:         450000000,
		City:          testutil.Ptr("Medellín"),
		Latitude:      testutil.Ptr(6.2),
		Bedrooms:      3,
		Bathrooms:     2,
		ParkingSpaces: 1,
		AreaM2:        85.5,
		Images:        []string{"https://img/1.jpg"},
		Amenities:     []string{"piscina", "gimnasio"},
	}
}

func (s *PostgresIntegrationSuite) TestPropertyStore_InsertUpdate() {
	store := NewPropertyStore(s.db)
	property := s.newProperty("recP1", "apartamento-en-el-poblado-recP1")
	s.Require().NoError(store.Insert(s.ctx, property))

	id, found, err := store.FindIDByAirtableID(s.ctx, "recP1")
	s.NoError(err)
	s.True(found)
	s.Equal(property.ID, id)

	property.Price = 430000000
	property.Status = domain.StatusSaleAndRent
	s.Require().NoError(store.Update(s.ctx, property))

	got, err := s.propertyBySlug(property.Slug)
	s.Require().NoError(err)
	s.Equal(float64(430000000), got.Price)
	s.Equal(domain.StatusSaleAndRent, got.Status)
	s.Equal([]string{"piscina", "gimnasio"}, got.Amenities)
	s.Nil(got.AgentID)
	s.InDelta(6.2, *got.Latitude, 0.0001)
}

func (s *PostgresIntegrationSuite) TestPropertyStore_LinksAgent() {
	agents := NewAgentStore(s.db)
	properties := NewPropertyStore(s.db)

	agent := s.newAgent("recA1", "maria-lopez-recA1")
	s.Require().NoError(agents.Insert(s.ctx, agent))

	property := s.newProperty("recP1", "casa-recP1")
	property.AgentID = testutil.Ptr(agent.ID)
	s.Require().NoError(properties.Insert(s.ctx, property))

	got, err := s.propertyBySlug("casa-recP1")
	s.Require().NoError(err)
	s.Require().NotNil(got.AgentID)
	s.Equal(agent.ID, *got.AgentID)
}

func (s *PostgresIntegrationSuite) TestPropertyStore_RejectsUnknownType() {
	store := NewPropertyStore(s.db)
	property := s.newProperty("recP1", "x-recP1")
	property.PropertyType = "castillo"

	err := store.Insert(s.ctx, property)
	s.Error(err)
	s.Contains(err.Error(), "check constraint")
}

func (s *PostgresIntegrationSuite) TestSchemaInspector_HasColumn() {
	inspector := NewSchemaInspector(s.db)

	ok, err := inspector.HasColumn(s.ctx, "agents", "airtable_id")
	s.NoError(err)
	s.True(ok)

	_, err = s.db.ExecContext(s.ctx, "CREATE TABLE IF NOT EXISTS legacy_agents (id UUID PRIMARY KEY, email TEXT)")
	s.Require().NoError(err)

	ok, err = inspector.HasColumn(s.ctx, "legacy_agents", "airtable_id")
	s.NoError(err)
	s.False(ok)
}

func (s *PostgresIntegrationSuite) TestSchemaInspector_MissingTable() {
	inspector := NewSchemaInspector(s.db)

	_, err := inspector.HasColumn(s.ctx, "no_such_table", "airtable_id")
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewAgentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.Insert(ctx, s.newAgent("recA1", "maria-lopez-recA1"))
	})
	s.NoError(err)

	_, found, err := store.FindIDByAirtableID(s.ctx, "recA1")
	s.NoError(err)
	s.True(found)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewAgentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Insert(ctx, s.newAgent("recA1", "maria-lopez-recA1")); err != nil {
			return err
		}
		return errors.New("boom")
	})
	s.Error(err)

	_, found, err := store.FindIDByAirtableID(s.ctx, "recA1")
	s.NoError(err)
	s.False(found)
}

func (s *PostgresIntegrationSuite) TestTransaction_Nested() {
	tm := NewTransactionManager(s.db)
	store := NewAgentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		outer := GetTxFromContext(ctx)
		return tm.WithTransaction(ctx, func(inner context.Context) error {
			s.Same(outer, GetTxFromContext(inner))
			return store.Insert(inner, s.newAgent("recA1", "maria-lopez-recA1"))
		})
	})
	s.NoError(err)
}
