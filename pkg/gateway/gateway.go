package gateway

//go:generate mockgen -destination=mock/gateway.go -package=mock github.com/fadedpez/gamefairy/pkg/gateway Gateway

import (
	"github.com/fadedpez/gamefairy/pkg/oracle"
)

// Gateway supplies the oracle a game consults
type Gateway interface {
	// GetOracle returns an oracle ready to be asked
	GetOracle() oracle.Oracle
}

// FairyGateway hands out a new GameFairy on every lookup
type FairyGateway struct {
	visions string
}

// New creates a gateway whose fairies all share the given visions
func New(visions string) *FairyGateway {
	return &FairyGateway{visions: visions}
}

// GetOracle implements Gateway
func (g *FairyGateway) GetOracle() oracle.Oracle {
	return oracle.NewGameFairy(g.visions)
}
