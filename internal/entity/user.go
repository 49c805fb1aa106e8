package entity

import (
	"database/sql"

	"github.com/virality-gg/backend/pkg/enum"
)

type User struct {
	Base

	DiscordID       sql.NullString `gorm:"uniqueIndex"`
	DiscordUsername string
	Username        string `gorm:"uniqueIndex"`
	FullName        string
}

type Wallet struct {
	Base

	UserID string `gorm:"uniqueIndex"`
	User   User   `gorm:"foreignKey:UserID"`

	Balance     float64
	TotalEarned float64
}

type TransactionType string

var (
	TransactionEarning    = enum.New(TransactionType("earning"))
	TransactionWithdrawal = enum.New(TransactionType("withdrawal"))
)

type Transaction struct {
	Base

	UserID string `gorm:"index"`
	Amount float64
	Type   TransactionType
	Note   string
}
