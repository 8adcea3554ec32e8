package server

// CommandType enumerates the player commands the hub accepts between
// ticks.
type CommandType string

const (
	CommandSell       CommandType = "sell"
	CommandSellAll    CommandType = "sellAll"
	CommandSelectOre  CommandType = "selectOre"
	CommandAssignRole CommandType = "assignRole"
	CommandSetPower   CommandType = "setPower"
)

// Command is one queued player instruction, applied at the top of the next
// tick.
type Command struct {
	Type        CommandType
	ShipID      string
	Ore         string
	Quantity    int
	CrewID      string
	Role        string
	EquipmentID string
	Powered     bool
}

// EquipmentView is the wire form of an installed equipment instance.
type EquipmentView struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Degradation float64 `json:"degradation"`
	Powered     bool    `json:"powered"`
}

// CrewView is the wire form of a crew member.
type CrewView struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Role   string         `json:"role"`
	Health float64        `json:"health"`
	Skills map[string]int `json:"skills"`
}

// CargoView is one ore ledger line.
type CargoView struct {
	Ore      string `json:"ore"`
	Quantity int    `json:"quantity"`
}

// ShipView is the wire form of a ship.
type ShipView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	SelectedOre   string          `json:"selectedOre,omitempty"`
	Cargo         []CargoView     `json:"cargo,omitempty"`
	CargoMassKg   float64         `json:"cargoMassKg"`
	RemainingKg   float64         `json:"remainingKg"`
	CreditsEarned float64         `json:"creditsEarned"`
	HoldFull      bool            `json:"holdFull,omitempty"`
	Equipment     []EquipmentView `json:"equipment,omitempty"`
	Crew          []CrewView      `json:"crew,omitempty"`
}

// StateMessage is the per-tick broadcast.
type StateMessage struct {
	Type       string     `json:"type"`
	Tick       uint64     `json:"tick"`
	Credits    float64    `json:"credits"`
	Ships      []ShipView `json:"ships"`
	ServerTime int64      `json:"serverTime"`
}
