package models

import "time"

// Category types selecting which level set an award uses.
const (
	TypePrestige = "prestige"
	TypeVip      = "vip"
)

// Category is a time-bounded configuration of award rules. Categories are
// seeded, append-only configuration; a category is active for an award date
// when start < date and end is either null or >= date.
type Category struct {
	ID         int64      `gorm:"primaryKey;column:id" json:"id"`
	Name       string     `gorm:"column:name" json:"name" validate:"required"`
	TotalLimit *int64     `gorm:"column:totalLimit" json:"totalLimit"`
	EntryLimit *int64     `gorm:"column:entryLimit" json:"entryLimit"`
	Start      time.Time  `gorm:"column:start" json:"start" validate:"required"`
	End        *time.Time `gorm:"column:end" json:"end"`
	Type       string     `gorm:"column:type" json:"type" validate:"required,oneof=prestige vip"`
}

// TableName overrides GORM's pluralization to match the legacy schema.
func (Category) TableName() string {
	return "categories"
}

// CapEntry clamps amount to the category's per-entry limit. Categories with
// no entryLimit leave the amount untouched.
func (c *Category) CapEntry(amount int64) int64 {
	if c.EntryLimit != nil && amount > *c.EntryLimit {
		return *c.EntryLimit
	}
	return amount
}
