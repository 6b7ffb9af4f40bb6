package store

import (
	"context"
	"fmt"
	"log/slog"
)

// seedPlayers is the fixed roster inserted on first start.
var seedPlayers = []string{
	"Maximilian Hofer", "Hannes Peintner", "Alex Braunhofer", "Alex Schraffel",
	"Andreas Fusco", "Armin Feretti", "Hannes Larcher", "Julian Brunner",
	"Leo Tauber", "Lukas Mayr", "Manuel Troger", "Martin Gasser",
	"Matthias Schmid", "Maximilian Schraffl", "Michael Mitterrutzner", "Michael Peintner",
	"Patrick Auer", "Patrick Pietersteiner", "Stefan Filo", "Stefan Peintner",
	"Manuel Auer", "Mauro Monti", "Tobias", "Jakob Unterholzner",
	"Fabian Bacher", "Emil Gabrieli", "Mardochee", "Oleg Schleiermann",
}

type seedPenaltyType struct {
	name        string
	amount      float64
	description string
}

// seedPenaltyTypes is the fixed catalog inserted on first start. Amounts of
// zero mark in-kind penalties.
var seedPenaltyTypes = []seedPenaltyType{
	{"Unentschuldigtes Fehlen im Trainingslager", 50, ""},
	{"Bier bei Essen Trainingslager", 10, ""},
	{"Busfahrer pflanzen", 5, ""},
	{"Alpha Aktion", 5, ""},
	{"Ball in Q5", 2, ""},
	{"Socken ohschneiden", 20, ""},
	{"Valentinstog fahln", 50, ""},
	{"Abschlussmatch verloren", 2, ""},
	{"Fehlen beim Spiel wegen Urlaub", 30, ""},
	{"Abwesenheit Urlaub während Meisterschaft", 10, ""},
	{"Unentschuldigtes Fehlen Spiel", 50, ""},
	{"Unentschieden Meisterschaftsspiel", 1, ""},
	{"Niederlage Meisterschaftsspiel", 2, ""},
	{"Spiel Socken ohschneiden", 20, ""},
	{"Elfer verursachen", 10, ""},
	{"Unentschuldigtes Fehlen beim Training", 20, ""},
	{"100%ige Chance liegen lossen", 5, ""},
	{"Falscher Einwurf", 5, ""},
	{"Elfer verschiaßn", 10, ""},
	{"Tormonn Papelle kregn", 5, ""},
	{"Freitig glei nochn Training gian", 2, ""},
	{"Schuache in Kabine ohklopfn", 5, ""},
	{"Kistenplan net einholten /pro Kopf", 30, ""},
	{"Übung bei training vertschecken", 1, ""},
	{"Torello 20 Pässe", 2, ""},
	{"Übern tennisplotz mit FB schuach gian", 5, ""},
	{"Nochn training gian ohne eps zu verraumen", 5, ""},
	{"Gelbsperre/Rotsperre pro Spiel", 15, ""},
	{"Kabinendienst vernachlässigt", 10, ""},
	{"Freitags Abschluss-Spiel verloren", 2, ""},
	{"Abwesenheit Urlaub in Vorbereitung", 5, ""},
	{"Glei nochn Hoamspiel gian(min 30 min.)", 10, ""},
	{"Saufn vorn Spiel", 50, ""},
	{"Unsportliches Verhalten gegenüber Mitspieler/Trai", 50, ""},
	{"Erstes Tor/Startelfeinsatz", 0, "Kasten (ansonsten 20€)"},
	{"Eigentor", 0, "Kasten (ansonsten 20€)"},
	{"Foto in Zeitung/Online", 2, ""},
	{"Sachen in Kabine/Platz vergessen", 5, ""},
	{"Unentschuldigtes fehlen beim Training ohne Absage", 15, ""},
	{"Rauchen im Trikot", 15, ""},
	{"Bei Spiel folscher Trainer", 20, ""},
	{"Folsches Trainingsgewond", 5, ""},
	{"Handy leitn in do kabine", 5, ""},
	{"Schiffn in do Dusche", 20, ""},
	{"Oan setzn in do Kabine (wenns stinkt 20€)", 5, ""},
	{"Frau/freindin fa an Mitspieler verraumen", 500, ""},
	{"Geburtstogsessen net innerholb 1 Monat gebrocht", 150, ""},
	{"Rote Karte wegn Unsportlichkeit", 50, ""},
	{"Gelbe Karte wegn Unsportlichkeit", 20, ""},
	{"Zu spät - Pauschale", 5, ""},
}

// EnsureSeeded bootstraps reference data. Seeding is gated purely on "table
// currently empty": if an administrator deletes all rows, the next start
// re-seeds. The unique name constraints make a concurrent double-seed fail
// closed rather than duplicate.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	var playerCount int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM player`).Scan(&playerCount); err != nil {
		return fmt.Errorf("count players: %w", err)
	}
	if playerCount == 0 {
		for _, name := range seedPlayers {
			if _, err := s.exec(ctx, `INSERT INTO player (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed player %q: %w", name, err)
			}
		}
		s.logger.Info("seeded player roster", slog.Int("players", len(seedPlayers)))
	}

	var typeCount int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM penalty_type`).Scan(&typeCount); err != nil {
		return fmt.Errorf("count penalty types: %w", err)
	}
	if typeCount == 0 {
		for _, pt := range seedPenaltyTypes {
			if _, err := s.exec(ctx,
				`INSERT INTO penalty_type (name, amount, description) VALUES (?, ?, ?)`,
				pt.name, pt.amount, pt.description,
			); err != nil {
				return fmt.Errorf("seed penalty type %q: %w", pt.name, err)
			}
		}
		s.logger.Info("seeded penalty catalog", slog.Int("types", len(seedPenaltyTypes)))
	}

	return nil
}
