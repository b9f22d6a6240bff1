package model

// PlayerKind selects the behaviour set used for a player
type PlayerKind string

const (
	PlayerKindHuman    PlayerKind = "human"
	PlayerKindComputer PlayerKind = "computer"
)

// DisplayName returns a human-readable label for the kind
func (k PlayerKind) DisplayName() string {
	switch k {
	case PlayerKindHuman:
		return "Human"
	case PlayerKindComputer:
		return "Computer"
	default:
		return string(k)
	}
}

// IsValid returns true for known player kinds
func (k PlayerKind) IsValid() bool {
	return k == PlayerKindHuman || k == PlayerKindComputer
}

// ValidPlayerKinds returns all valid player kinds
func ValidPlayerKinds() []PlayerKind {
	return []PlayerKind{PlayerKindHuman, PlayerKindComputer}
}

// Player is one side of a match
type Player struct {
	Name      string     `json:"name"`
	Kind      PlayerKind `json:"kind"`
	Board     *Board     `json:"board"`
	FleetSize int        `json:"fleet_size"` // Informational, as requested at registration
}

// NewPlayer creates a player with an empty board of the given dimensions
func NewPlayer(kind PlayerKind, name string, width, height, fleetSize int) (*Player, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidPlayerKind
	}
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return &Player{
		Name:      name,
		Kind:      kind,
		Board:     board,
		FleetSize: fleetSize,
	}, nil
}

// IsComputer returns true if the engine chooses this player's moves
func (p *Player) IsComputer() bool {
	return p.Kind == PlayerKindComputer
}
