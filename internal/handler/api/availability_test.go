//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/httptest"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/listings/:id/availability", s.handler.CheckAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	listingID := uuid.New()
	base := "/listings/" + listingID.String() + "/availability"
	url := base + "?checkIn=2026-07-10&checkOut=2026-07-15"

	s.Run("success: returns 200 with availability", func() {
		result := &queries.AvailabilityResult{
			ListingID: listingID,
			CheckIn:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
			Available: true,
		}
		s.mockQueries.EXPECT().Check(gomock.Any(), listingID, result.CheckIn, result.CheckOut).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.AvailabilityResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.True(resp.Available)
		s.Equal(listingID, resp.ListingID)
	})

	s.Run("not found: returns 404 for unknown listing", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), listingID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrListingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad request: missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad request: malformed listing id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/nope/availability?checkIn=2026-07-10&checkOut=2026-07-15", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad request: inverted range", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), listingID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidDateRange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?checkIn=2026-07-15&checkOut=2026-07-10", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
