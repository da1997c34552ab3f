package game

import (
	"testing"

	"github.com/fadedpez/gamefairy/internal/types"
	gatewaymock "github.com/fadedpez/gamefairy/pkg/gateway/mock"
	oraclemock "github.com/fadedpez/gamefairy/pkg/oracle/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GameMockTestSuite declares the gateway and oracle answers up front with gomock
type GameMockTestSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockGateway
	mockOracle  *oraclemock.MockOracle

	game *Game
}

func TestGameMockSuite(t *testing.T) {
	suite.Run(t, new(GameMockTestSuite))
}

func (s *GameMockTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockGateway(s.mockCtrl)
	s.mockOracle = oraclemock.NewMockOracle(s.mockCtrl)

	s.game = New(s.mockGateway)
}

func (s *GameMockTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameMockTestSuite) TestIsDoneTie() {
	// Setup
	s.mockGateway.EXPECT().GetOracle().Return(s.mockOracle)
	s.mockOracle.EXPECT().Proclamation().Return(false, nil)

	// Execute
	done, err := s.game.IsDone()

	// Assert
	s.NoError(err)
	s.False(done, "A tied game should not be done")
}

func (s *GameMockTestSuite) TestIsDoneWin() {
	// Setup
	s.mockGateway.EXPECT().GetOracle().Return(s.mockOracle)
	s.mockOracle.EXPECT().Proclamation().Return(true, nil)

	// Execute
	done, err := s.game.IsDone()

	// Assert
	s.NoError(err)
	s.True(done, "A won game should be done")
}

func (s *GameMockTestSuite) TestIsDoneIsRepeatable() {
	// Setup: the oracle is looked up again on every call
	s.mockGateway.EXPECT().GetOracle().Return(s.mockOracle).Times(2)
	s.mockOracle.EXPECT().Proclamation().Return(true, nil).Times(2)

	// Execute
	first, err := s.game.IsDone()
	s.Require().NoError(err)
	second, err := s.game.IsDone()
	s.Require().NoError(err)

	// Assert
	s.Equal(first, second)
}

func (s *GameMockTestSuite) TestLookupHappensBeforeProclamation() {
	// Setup
	gomock.InOrder(
		s.mockGateway.EXPECT().GetOracle().Return(s.mockOracle),
		s.mockOracle.EXPECT().Proclamation().Return(true, nil),
	)

	// Execute
	done, err := s.game.IsDone()

	// Assert
	s.NoError(err)
	s.True(done)
}

func (s *GameMockTestSuite) TestIndeterminateOraclePropagates() {
	// Setup
	indeterminate := types.NewGameError(types.ErrIndeterminateOracle, "the visions are clouded")
	s.mockGateway.EXPECT().GetOracle().Return(s.mockOracle)
	s.mockOracle.EXPECT().Proclamation().Return(false, indeterminate)

	// Execute
	done, err := s.game.IsDone()

	// Assert
	s.False(done)
	s.Same(indeterminate, err, "Game should not translate oracle errors")
}

func (s *GameMockTestSuite) TestNilOracle() {
	// Setup
	s.mockGateway.EXPECT().GetOracle().Return(nil)

	// Execute
	_, err := s.game.IsDone()

	// Assert
	s.True(types.IsGameError(err, types.ErrInternalError))
}
