package player

import "fmt"

// Player is a squad member. Position is the raw code as stored (GK, CB, ST, ...).
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Position     string
	JerseyNumber int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
