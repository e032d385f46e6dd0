package employee

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/workhours"
)

type Employee struct {
	ID        string
	Name      string
	Position  Position
	JoinDate  time.Time
	PinHash   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined
	WorkingHours []workhours.WorkingHours
	Warnings     []Warning
}

type Position string

const (
	PositionCEO        Position = "CEO"
	PositionCoCEO      Position = "Co-CEO"
	PositionManager    Position = "Manager"
	PositionSupervisor Position = "Supervisor"
	PositionKaryawan   Position = "Karyawan"
	PositionTrainee    Position = "Trainee"
)

// Positions lists every position an employee may hold, highest first.
var Positions = []Position{
	PositionCEO,
	PositionCoCEO,
	PositionManager,
	PositionSupervisor,
	PositionKaryawan,
	PositionTrainee,
}

func (p Position) IsValid() bool {
	for _, pos := range Positions {
		if pos == p {
			return true
		}
	}
	return false
}

func PositionNames() []string {
	names := make([]string, len(Positions))
	for i, p := range Positions {
		names[i] = string(p)
	}
	return names
}

type Warning struct {
	ID       string    `json:"id"`
	Reason   string    `json:"reason"`
	IssuedAt time.Time `json:"issued_at"`
}
