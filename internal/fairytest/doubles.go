// Package fairytest provides test doubles for the oracle and gateway.
package fairytest

import (
	"github.com/fadedpez/gamefairy/internal/stub"
	"github.com/fadedpez/gamefairy/internal/types"
	"github.com/fadedpez/gamefairy/pkg/gateway"
	"github.com/fadedpez/gamefairy/pkg/oracle"
)

// Operation names accepted by the doubles' Stubs targets
const (
	OpProclamation = "Proclamation"
	OpGetOracle    = "GetOracle"
)

// Oracle is an oracle whose Proclamation can be stubbed. Unstubbed, it
// reports an internal error.
type Oracle struct {
	stubs        *stub.Target
	proclamation *stub.Op[func() (bool, error)]
}

var _ oracle.Oracle = (*Oracle)(nil)

// NewOracle creates an oracle double
func NewOracle() *Oracle {
	o := &Oracle{stubs: stub.NewTarget("fairytest.Oracle")}
	o.proclamation = stub.Define(o.stubs, OpProclamation, func() (bool, error) {
		return false, types.NewGameError(types.ErrInternalError, "proclamation not stubbed")
	})
	return o
}

// Stubs returns the target to pass to the stub package
func (o *Oracle) Stubs() *stub.Target {
	return o.stubs
}

// Proclamation implements oracle.Oracle
func (o *Oracle) Proclamation() (bool, error) {
	return o.proclamation.Call()()
}

// Gateway wraps a real gateway so that GetOracle can be stubbed. Unstubbed,
// it delegates to the wrapped gateway.
type Gateway struct {
	stubs     *stub.Target
	getOracle *stub.Op[func() oracle.Oracle]
}

var _ gateway.Gateway = (*Gateway)(nil)

// NewGateway creates a stubbable gateway in front of real
func NewGateway(real gateway.Gateway) *Gateway {
	g := &Gateway{stubs: stub.NewTarget("fairytest.Gateway")}
	g.getOracle = stub.Define(g.stubs, OpGetOracle, real.GetOracle)
	return g
}

// Stubs returns the target to pass to the stub package
func (g *Gateway) Stubs() *stub.Target {
	return g.stubs
}

// GetOracle implements gateway.Gateway
func (g *Gateway) GetOracle() oracle.Oracle {
	return g.getOracle.Call()()
}
