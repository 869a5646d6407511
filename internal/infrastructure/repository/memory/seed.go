package memory

import (
	_ "embed"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/player"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

//go:embed seed.json
var seedJSON []byte

// Seed is the demo dataset served when no database is configured. Stat rows
// are kept raw so they go through the same normalization as database rows.
type Seed struct {
	Teams       []team.Team
	Players     []player.Player
	MatchStats  []teamstats.RawRow
	PlayerStats []playerstats.RawRecord
}

type seedDocument struct {
	Teams []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Short string `json:"short"`
	} `json:"teams"`
	Players []struct {
		ID           string `json:"id"`
		TeamID       string `json:"team_id"`
		Name         string `json:"name"`
		Position     string `json:"position"`
		JerseyNumber int    `json:"jersey_number"`
	} `json:"players"`
	MatchStats  []map[string]any `json:"match_stats"`
	PlayerStats []map[string]any `json:"player_stats"`
}

// LoadSeed decodes the embedded dataset.
func LoadSeed() (Seed, error) {
	return decodeSeed(seedJSON)
}

func decodeSeed(raw []byte) (Seed, error) {
	var doc seedDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return Seed{}, errors.Wrap(err, "decode seed data")
	}

	out := Seed{
		Teams:       make([]team.Team, 0, len(doc.Teams)),
		Players:     make([]player.Player, 0, len(doc.Players)),
		MatchStats:  make([]teamstats.RawRow, 0, len(doc.MatchStats)),
		PlayerStats: make([]playerstats.RawRecord, 0, len(doc.PlayerStats)),
	}
	for _, item := range doc.Teams {
		t := team.Team{ID: item.ID, Name: item.Name, Short: item.Short}
		if err := t.Validate(); err != nil {
			return Seed{}, errors.Wrapf(err, "seed team %q", item.ID)
		}
		out.Teams = append(out.Teams, t)
	}
	for _, item := range doc.Players {
		p := player.Player{
			ID:           item.ID,
			TeamID:       item.TeamID,
			Name:         item.Name,
			Position:     item.Position,
			JerseyNumber: item.JerseyNumber,
		}
		if err := p.Validate(); err != nil {
			return Seed{}, errors.Wrapf(err, "seed player %q", item.ID)
		}
		out.Players = append(out.Players, p)
	}
	out.MatchStats = append(out.MatchStats, doc.MatchStats...)
	out.PlayerStats = append(out.PlayerStats, doc.PlayerStats...)

	return out, nil
}
