package entity

import (
	"time"
)

// Alert is one fired threshold alert, kept as an audit trail. The dedup
// ledger is in-memory only; this table never feeds the suppression logic.
type Alert struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Symbol    string `gorm:"index"`
	Direction string `gorm:"index"`
	Price     string
	Threshold string
	Title     string
	CreatedAt time.Time `gorm:"index"`
}

const (
	DirectionSell = "sell"
	DirectionBuy  = "buy"
)
