package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"listing_sync/internal/domain"
	"listing_sync/internal/service/mocks"
)

type PropertySyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockPropertySource
	properties *mocks.MockPropertyStore
	txManager  *mocks.MockTransactionManager

	service *PropertySync
}

func (s *PropertySyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockPropertySource(s.ctrl)
	s.properties = mocks.NewMockPropertyStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewPropertySync(s.source, s.properties, s.txManager, nil, logger)
}

func (s *PropertySyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPropertySyncTestSuite(t *testing.T) {
	suite.Run(t, new(PropertySyncTestSuite))
}

func (s *PropertySyncTestSuite) TestSync_CreatesAndUpdates() {
	ctx := context.Background()

	s.source.EXPECT().FetchProperties(ctx).Return([]domain.ExternalProperty{
		{ID: "recP1", Title: "Casa en Envigado", PropertyType: "Casa", TransactionType: "Venta", AgentIDs: []string{"recA1"}},
		{ID: "recP2", Title: "Oficina en El Poblado", PropertyType: "Oficina", TransactionType: "Arriendo"},
	}, nil)

	s.properties.EXPECT().FindIDByAirtableID(ctx, "recP1").Return("", false, nil)
	s.properties.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Property) error {
		s.NotEmpty(p.ID)
		s.Equal(domain.PropertyTypeHouse, p.PropertyType)
		s.Equal(domain.StatusSale, p.Status)
		s.Nil(p.AgentID, "agent map is empty, linkage is dropped")
		return nil
	})

	s.properties.EXPECT().FindIDByAirtableID(ctx, "recP2").Return("prop-2", true, nil)
	s.properties.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Property) error {
		s.Equal("prop-2", p.ID)
		s.Equal(domain.PropertyTypeOffice, p.PropertyType)
		s.Equal(domain.StatusRent, p.Status)
		return nil
	})

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal(1, result.Created)
	s.Equal(1, result.Updated)
	s.Equal(0, result.Errors)
	s.Equal("Casa en Envigado", result.Details[0].DisplayName)
	s.Equal("recP2", result.Details[1].ExternalID)
}

func (s *PropertySyncTestSuite) TestSync_PartialFailure() {
	ctx := context.Background()

	s.source.EXPECT().FetchProperties(ctx).Return([]domain.ExternalProperty{
		{ID: "recP1", Title: "Uno"},
		{ID: "recP2", Title: "Dos"},
	}, nil)

	s.properties.EXPECT().FindIDByAirtableID(ctx, "recP1").Return("prop-1", true, nil)
	s.properties.EXPECT().Update(ctx, gomock.Any()).Return(errors.New(`new row violates check constraint "properties_price_check"`))
	s.properties.EXPECT().FindIDByAirtableID(ctx, "recP2").Return("", false, nil)
	s.properties.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal(1, result.Errors)
	s.Equal(1, result.Created)
	s.Contains(result.Details[0].Error, "update property")
}

func (s *PropertySyncTestSuite) TestSync_SourceError() {
	ctx := context.Background()

	s.source.EXPECT().FetchProperties(ctx).Return(nil, errors.New("timeout"))

	result, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "fetch properties")
}
