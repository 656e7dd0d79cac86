package models

import "time"

// Award statuses. An award enters the ledger as Requested (self-request),
// Nominated (officer, pending) or Awarded (officer, direct) and leaves it
// only by being flipped to Removed; rows are never hard-deleted.
const (
	StatusRequested = "Requested"
	StatusNominated = "Nominated"
	StatusAwarded   = "Awarded"
	StatusRemoved   = "Removed"
)

// Award represents a prestige grant record for a single member.
// Column names follow the legacy awards table, which predates this service.
// Exactly one of the level amounts is non-zero per row; Level records which.
type Award struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	User        int64     `gorm:"column:user" json:"user"`
	CategoryID  int64     `gorm:"column:categoryId" json:"-"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Date        time.Time `gorm:"column:date" json:"date"`
	Description string    `gorm:"column:description" json:"description"`
	Source      string    `gorm:"column:source" json:"source"`
	Status      string    `gorm:"column:status" json:"status"`
	Level       string    `gorm:"column:level" json:"level,omitempty"`

	// Actor IDs stamped when the status becomes Nominated or Awarded.
	Nominate int64 `gorm:"column:nominate" json:"nominate"`
	Awarder  int64 `gorm:"column:awarder" json:"awarder"`

	General  int64 `gorm:"column:general" json:"general"`
	Regional int64 `gorm:"column:regional" json:"regional"`
	National int64 `gorm:"column:national" json:"national"`
	Vip      int64 `gorm:"column:vip" json:"vip"`

	// Usable amounts, capped by the category's entryLimit.
	UsableGeneral  int64 `gorm:"column:usableGeneral" json:"usableGeneral"`
	UsableRegional int64 `gorm:"column:usableRegional" json:"usableRegional"`
	UsableNational int64 `gorm:"column:usableNational" json:"usableNational"`
	UsableVip      int64 `gorm:"column:usableVip" json:"usableVip"`

	Modified time.Time `gorm:"column:modified;autoUpdateTime" json:"modified"`
}

// TableName overrides GORM's pluralization to match the legacy schema.
func (Award) TableName() string {
	return "awards"
}

// Amount returns the raw amount recorded for the given level.
func (a *Award) Amount(level string) int64 {
	switch level {
	case "general":
		return a.General
	case "regional":
		return a.Regional
	case "national":
		return a.National
	case "vip":
		return a.Vip
	}
	return 0
}

// SetAmount records amount and usable for the given level.
func (a *Award) SetAmount(level string, amount, usable int64) {
	switch level {
	case "general":
		a.General, a.UsableGeneral = amount, usable
	case "regional":
		a.Regional, a.UsableRegional = amount, usable
	case "national":
		a.National, a.UsableNational = amount, usable
	case "vip":
		a.Vip, a.UsableVip = amount, usable
	}
}
