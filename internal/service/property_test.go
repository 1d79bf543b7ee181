package service_test

import (
	"context"
	"errors"
	"testing"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/mocks"
	"pg-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PropertyServiceTestSuite defines the test suite for PropertyService
type PropertyServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPropertyRepo *mocks.MockPropertyRepositoryInterface
	mockTenantRepo   *mocks.MockTenantRepositoryInterface
	properties       *service.PropertyService
	actor            auth.Actor
	ctx              context.Context
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPropertyRepo = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.properties = service.NewPropertyService(suite.mockPropertyRepo, suite.mockTenantRepo, service.NewValidator())
	suite.actor = auth.Actor{AccountID: uuid.New(), TenantBusinessID: uuid.New()}
	suite.ctx = context.Background()
}

func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PropertyServiceTestSuite) ownProperty() *models.Property {
	return &models.Property{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Green View",
		Address:          "12 MG Road",
		TenantBusinessID: suite.actor.TenantBusinessID,
	}
}

func (suite *PropertyServiceTestSuite) TestCreate_StampsTenantBusiness() {
	suite.mockPropertyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Property) error {
			suite.Equal(suite.actor.TenantBusinessID, p.TenantBusinessID)
			suite.Equal("Green View", p.Name)
			p.ID = uuid.New()
			return nil
		})

	property, err := suite.properties.Create(suite.ctx, suite.actor, &service.CreatePropertyRequest{Name: " Green View ", Address: "12 MG Road"})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, property.ID)
}

func (suite *PropertyServiceTestSuite) TestCreate_MissingAddress() {
	_, err := suite.properties.Create(suite.ctx, suite.actor, &service.CreatePropertyRequest{Name: "Green View", Address: "  "})

	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	suite.Equal("address", validationErr.Field)
}

func (suite *PropertyServiceTestSuite) TestList() {
	expected := []models.Property{*suite.ownProperty(), *suite.ownProperty()}
	suite.mockPropertyRepo.EXPECT().ListByTenantBusiness(gomock.Any(), suite.actor.TenantBusinessID).Return(expected, nil)

	properties, err := suite.properties.List(suite.ctx, suite.actor)

	suite.Require().NoError(err)
	suite.Len(properties, 2)
}

func (suite *PropertyServiceTestSuite) TestGet_Outcomes() {
	own := suite.ownProperty()
	foreign := suite.ownProperty()
	foreign.TenantBusinessID = uuid.New()

	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)
	missing := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)

	got, err := suite.properties.Get(suite.ctx, suite.actor, own.ID.String())
	suite.Require().NoError(err)
	suite.Equal(own.ID, got.ID)

	_, err = suite.properties.Get(suite.ctx, suite.actor, foreign.ID.String())
	suite.ErrorIs(err, apperrors.ErrPropertyForbidden)

	_, err = suite.properties.Get(suite.ctx, suite.actor, missing.String())
	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)

	_, err = suite.properties.Get(suite.ctx, suite.actor, "not-a-uuid")
	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestUpdate_PartialFields() {
	own := suite.ownProperty()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.mockPropertyRepo.EXPECT().Update(gomock.Any(), own).Return(nil)

	name := "Blue Sky"
	updated, err := suite.properties.Update(suite.ctx, suite.actor, own.ID.String(), &service.UpdatePropertyRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Blue Sky", updated.Name)
	suite.Equal("12 MG Road", updated.Address)
}

func (suite *PropertyServiceTestSuite) TestUpdate_BlankFieldIgnored() {
	own := suite.ownProperty()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.mockPropertyRepo.EXPECT().Update(gomock.Any(), own).Return(nil)

	blank := "   "
	address := "7 Brigade Road"
	updated, err := suite.properties.Update(suite.ctx, suite.actor, own.ID.String(), &service.UpdatePropertyRequest{Name: &blank, Address: &address})

	suite.Require().NoError(err)
	suite.Equal("Green View", updated.Name)
	suite.Equal("7 Brigade Road", updated.Address)
}

func (suite *PropertyServiceTestSuite) TestDelete_Empty() {
	own := suite.ownProperty()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.mockTenantRepo.EXPECT().CountByProperty(gomock.Any(), own.ID).Return(int64(0), nil)
	suite.mockPropertyRepo.EXPECT().Delete(gomock.Any(), own.ID).Return(nil)

	suite.NoError(suite.properties.Delete(suite.ctx, suite.actor, own.ID.String()))
}

func (suite *PropertyServiceTestSuite) TestDelete_WithTenantsConflicts() {
	own := suite.ownProperty()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.mockTenantRepo.EXPECT().CountByProperty(gomock.Any(), own.ID).Return(int64(3), nil)

	err := suite.properties.Delete(suite.ctx, suite.actor, own.ID.String())

	suite.True(apperrors.IsConflict(err))
}

func (suite *PropertyServiceTestSuite) TestDelete_ForeignProperty() {
	foreign := suite.ownProperty()
	foreign.TenantBusinessID = uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	err := suite.properties.Delete(suite.ctx, suite.actor, foreign.ID.String())

	suite.ErrorIs(err, apperrors.ErrPropertyForbidden)
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
