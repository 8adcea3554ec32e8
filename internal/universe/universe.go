package universe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

// Universe is the loaded world: locations plus the player fleet.
type Universe struct {
	Locations []*state.Location
	Fleet     *state.Fleet

	byKey map[string]*state.Location
}

// LocationByKey resolves a location, nil when unknown.
func (u *Universe) LocationByKey(key string) *state.Location {
	if u == nil {
		return nil
	}
	return u.byKey[key]
}

// Document is the YAML shape of a universe file.
type Document struct {
	Locations []LocationDoc `yaml:"locations"`
	Fleet     FleetDoc      `yaml:"fleet"`
}

type LocationDoc struct {
	Key       string        `yaml:"key"`
	Name      string        `yaml:"name"`
	Type      string        `yaml:"type"`
	Services  []string      `yaml:"services"`
	Offerings []OfferingDoc `yaml:"offerings"`
}

type OfferingDoc struct {
	Ore        string  `yaml:"ore"`
	Multiplier float64 `yaml:"multiplier"`
}

type FleetDoc struct {
	Credits float64   `yaml:"credits"`
	Ships   []ShipDoc `yaml:"ships"`
}

type ShipDoc struct {
	Name          string    `yaml:"name"`
	Location      string    `yaml:"location"`
	OreCapacityKg float64   `yaml:"oreCapacityKg"`
	Equipment     []string  `yaml:"equipment"`
	Crew          []CrewDoc `yaml:"crew"`
}

type CrewDoc struct {
	Name   string         `yaml:"name"`
	Role   string         `yaml:"role"`
	Skills map[string]int `yaml:"skills"`
	Traits []string       `yaml:"traits"`
}

// Load reads a universe YAML file. A missing file falls back to the
// built-in default universe; a malformed or inconsistent one is an error.
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read universe file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse universe file %s: %w", path, err)
	}
	return build(doc)
}

func build(doc Document) (*Universe, error) {
	if len(doc.Locations) == 0 {
		return nil, fmt.Errorf("universe defines no locations")
	}

	u := &Universe{
		Fleet: &state.Fleet{Credits: doc.Fleet.Credits},
		byKey: make(map[string]*state.Location, len(doc.Locations)),
	}

	for _, locDoc := range doc.Locations {
		loc, err := buildLocation(locDoc)
		if err != nil {
			return nil, err
		}
		if _, dup := u.byKey[loc.Key]; dup {
			return nil, fmt.Errorf("duplicate location key %q", loc.Key)
		}
		u.Locations = append(u.Locations, loc)
		u.byKey[loc.Key] = loc
	}

	for _, shipDoc := range doc.Fleet.Ships {
		ship, err := u.buildShip(shipDoc)
		if err != nil {
			return nil, err
		}
		u.Fleet.Ships = append(u.Fleet.Ships, ship)
	}
	return u, nil
}

func buildLocation(doc LocationDoc) (*state.Location, error) {
	if doc.Key == "" {
		return nil, fmt.Errorf("location missing key")
	}
	locType := state.LocationType(doc.Type)
	switch locType {
	case state.LocationPlanet, state.LocationStation, state.LocationOrbital, state.LocationMoon, state.LocationBelt:
	default:
		return nil, fmt.Errorf("location %q has unknown type %q", doc.Key, doc.Type)
	}

	loc := &state.Location{
		Key:  doc.Key,
		Name: doc.Name,
		Type: locType,
	}
	for _, service := range doc.Services {
		loc.Services = append(loc.Services, state.Service(service))
	}
	for _, offering := range doc.Offerings {
		ore := catalog.OreID(offering.Ore)
		if _, ok := catalog.OreKindFor(ore); !ok {
			return nil, fmt.Errorf("location %q offers unknown ore %q", doc.Key, offering.Ore)
		}
		if offering.Multiplier < 0 {
			return nil, fmt.Errorf("location %q has negative multiplier for ore %q", doc.Key, offering.Ore)
		}
		loc.Offerings = append(loc.Offerings, state.OreOffering{Ore: ore, Multiplier: offering.Multiplier})
	}
	return loc, nil
}

func (u *Universe) buildShip(doc ShipDoc) (*state.Ship, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("ship missing name")
	}
	if u.byKey[doc.Location] == nil {
		return nil, fmt.Errorf("ship %q starts at unknown location %q", doc.Name, doc.Location)
	}
	capacity := doc.OreCapacityKg
	if capacity <= 0 {
		capacity = 5000
	}

	ship := state.NewShip(doc.Name, capacity)
	ship.LocationKey = doc.Location

	for _, kindID := range doc.Equipment {
		id := catalog.EquipmentID(kindID)
		if _, ok := catalog.EquipmentKindFor(id); !ok {
			return nil, fmt.Errorf("ship %q installs unknown equipment %q", doc.Name, kindID)
		}
		ship.Equipment = append(ship.Equipment, state.NewEquipmentInstance(id))
	}

	for _, crewDoc := range doc.Crew {
		skills := make(map[state.Skill]int, len(crewDoc.Skills))
		for name, level := range crewDoc.Skills {
			skills[state.Skill(name)] = level
		}
		var traits []state.Trait
		for _, trait := range crewDoc.Traits {
			traits = append(traits, state.Trait(trait))
		}
		member := state.NewCrewMember(crewDoc.Name, skills, traits...)
		if crewDoc.Role != "" {
			member.Role = state.Role(crewDoc.Role)
		}
		ship.Crew = append(ship.Crew, member)
	}
	return ship, nil
}

// Default builds a small starting universe used when no file is supplied.
func Default() *Universe {
	doc := Document{
		Locations: []LocationDoc{
			{
				Key:      "kessler_belt",
				Name:     "Kessler Belt",
				Type:     string(state.LocationBelt),
				Services: []string{string(state.ServiceMine)},
				Offerings: []OfferingDoc{
					{Ore: string(catalog.OreIronate), Multiplier: 1.2},
					{Ore: string(catalog.OreCupriteX), Multiplier: 1.0},
					{Ore: string(catalog.OreVelthium), Multiplier: 0.8},
				},
			},
			{
				Key:      "meridian_station",
				Name:     "Meridian Station",
				Type:     string(state.LocationStation),
				Services: []string{string(state.ServiceTrade)},
			},
			{
				Key:      "port_halcyon",
				Name:     "Port Halcyon",
				Type:     string(state.LocationPlanet),
				Services: []string{string(state.ServiceMine), string(state.ServiceTrade)},
				Offerings: []OfferingDoc{
					{Ore: string(catalog.OreIronate), Multiplier: 0.9},
					{Ore: string(catalog.OreAuridium), Multiplier: 1.1},
				},
			},
		},
		Fleet: FleetDoc{
			Credits: 500,
			Ships: []ShipDoc{
				{
					Name:          "SV Long Haul",
					Location:      "kessler_belt",
					OreCapacityKg: 5000,
					Equipment:     []string{string(catalog.EquipBoreDrill), string(catalog.EquipPlasmaCutter)},
					Crew: []CrewDoc{
						{
							Name: "Mara Voss",
							Role: string(state.RoleCommand),
							Skills: map[string]int{
								string(state.SkillCommand):  35,
								string(state.SkillCommerce): 20,
							},
						},
						{
							Name: "Jun Okafor",
							Role: string(state.RoleMiningOps),
							Skills: map[string]int{
								string(state.SkillMining): 30,
							},
							Traits: []string{"prospector"},
						},
					},
				},
			},
		},
	}

	u, err := build(doc)
	if err != nil {
		panic(err)
	}
	return u
}
