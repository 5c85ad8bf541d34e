package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberStatus is the lifecycle state of a society member.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusResigned MemberStatus = "resigned"
	MemberStatusDormant  MemberStatus = "dormant"
)

// Member represents a society member. MemberNumber is the
// human-readable business identifier (MEM_001, MEM_002, ...),
// generated at creation when the caller does not supply one and never
// mutated afterward.
type Member struct {
	ID             string
	SocietyID      string
	MemberNumber   string
	Name           string
	FatherHusband  string
	Address        string
	Phone          string
	Email          string
	DateOfJoining  time.Time
	ShareBalance   decimal.Decimal
	CDBalance      decimal.Decimal
	Status         MemberStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
