package oracle

//go:generate mockgen -destination=mock/oracle.go -package=mock github.com/fadedpez/gamefairy/pkg/oracle Oracle

import (
	"fmt"

	"github.com/fadedpez/gamefairy/internal/types"
	"github.com/google/uuid"
)

// Visions the game fairy understands
const (
	VisionsTie = "tie"
	VisionsWin = "win"
)

// Oracle answers whether a game has been won
type Oracle interface {
	// Proclamation returns true for a won game and false for a tie.
	// It fails when the outcome cannot be determined.
	Proclamation() (bool, error)
}

// GameFairy is the real Oracle. Its proclamation is read from a fixed
// visions string supplied at construction.
type GameFairy struct {
	ID      uuid.UUID
	visions string
}

// NewGameFairy creates a fairy with a fresh identity
func NewGameFairy(visions string) *GameFairy {
	return &GameFairy{
		ID:      uuid.New(),
		visions: visions,
	}
}

// Visions returns the fairy's internal state
func (f *GameFairy) Visions() string {
	return f.visions
}

// Proclamation implements Oracle
func (f *GameFairy) Proclamation() (bool, error) {
	switch f.visions {
	case VisionsTie:
		return false, nil
	case VisionsWin:
		return true, nil
	default:
		return false, types.NewGameError(types.ErrIndeterminateOracle,
			fmt.Sprintf("fairy %s cannot read visions %q", f.ID, f.visions))
	}
}
