package fairytest

import (
	"testing"

	"github.com/fadedpez/gamefairy/internal/stub"
	"github.com/fadedpez/gamefairy/internal/types"
	"github.com/fadedpez/gamefairy/pkg/gateway"
	"github.com/fadedpez/gamefairy/pkg/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracleUnstubbed(t *testing.T) {
	got, err := NewOracle().Proclamation()

	assert.False(t, got)
	assert.True(t, types.IsGameError(err, types.ErrInternalError))
}

func TestOracleStubs(t *testing.T) {
	o := NewOracle()

	assert.Equal(t, []string{OpProclamation}, o.Stubs().Operations())
	err := stub.WithStub(o.Stubs(), OpProclamation, true, func() error {
		got, err := o.Proclamation()
		require.NoError(t, err)
		assert.True(t, got)
		return nil
	})
	assert.NoError(t, err)
}

func TestGatewayDelegatesWhenUnstubbed(t *testing.T) {
	g := NewGateway(gateway.New(oracle.VisionsWin))

	fairy, ok := g.GetOracle().(*oracle.GameFairy)
	require.True(t, ok, "Unstubbed gateway should hand out the real fairy")
	assert.Equal(t, oracle.VisionsWin, fairy.Visions())
}

func TestGatewayStubs(t *testing.T) {
	g := NewGateway(gateway.New(oracle.VisionsWin))
	double := NewOracle()

	stub.Scoped(t, g.Stubs(), OpGetOracle, double)

	assert.Same(t, double, g.GetOracle())
}

func TestMockGatewayNilOracle(t *testing.T) {
	g := NewMockGateway(t)
	g.On("GetOracle").Return(nil).Once()

	assert.Nil(t, g.GetOracle())
	g.AssertExpectations(t)
}
