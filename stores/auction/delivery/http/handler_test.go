package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain/auction"
	mAuction "github.com/bidhaus/goapi/domain/auction/mocks"
)

type handlerSuite struct {
	suite.Suite

	auction *mAuction.Usecase
	h       *handler
}

func (s *handlerSuite) SetupTest() {
	s.auction = &mAuction.Usecase{}
	s.h = &handler{s.auction}
}

func (s *handlerSuite) TearDownTest() {
	s.auction.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) TestGetOpenItemsClampsPagination() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auctions/open?offset=-5&limit=-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	s.auction.On("GetOpenItems", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			opts := []auction.FindAllOptionsFunc{
				args.Get(1).(auction.FindAllOptionsFunc),
				args.Get(2).(auction.FindAllOptionsFunc),
			}
			parsed, err := auction.ParseFindAllOptions(opts...)
			s.Require().NoError(err)
			s.Require().NotNil(parsed.Offset)
			s.Require().NotNil(parsed.Limit)
			s.Equal(int32(0), *parsed.Offset)
			s.Equal(int32(100), *parsed.Limit)
		}).
		Return([]*auction.Item{}, nil).Once()

	s.Require().NoError(s.h.getOpenItems(c))
	s.Equal(http.StatusOK, rec.Code)
}
