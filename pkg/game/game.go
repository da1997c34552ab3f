package game

import (
	"github.com/fadedpez/gamefairy/internal/logging"
	"github.com/fadedpez/gamefairy/internal/types"
	"github.com/fadedpez/gamefairy/pkg/gateway"
)

// Game asks an oracle, found through its gateway, whether play is over
type Game struct {
	gateway gateway.Gateway
	logger  *logging.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used when consulting the oracle
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game that consults oracles supplied by gw
func New(gw gateway.Gateway, opts ...Option) *Game {
	g := &Game{
		gateway: gw,
		logger:  logging.Default,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsDone reports the oracle's proclamation. The oracle is looked up on every
// call and its answer, or error, is returned as is.
func (g *Game) IsDone() (bool, error) {
	o := g.gateway.GetOracle()
	if o == nil {
		return false, types.NewGameError(types.ErrInternalError, "gateway returned no oracle")
	}

	g.logger.Debug("Consulting oracle %T", o)
	return o.Proclamation()
}
