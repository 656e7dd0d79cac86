package models

import (
	"time"

	"gorm.io/datatypes"
)

// Action is an append-only audit entry for a state-changing operation on an
// award. One row is written per transition that is not a bare self-request;
// rows are never mutated or deleted.
type Action struct {
	ID      int64  `gorm:"primaryKey;column:id" json:"id"`
	AwardID int64  `gorm:"column:awardId" json:"awardId"`
	Action  string `gorm:"column:action" json:"action"`
	User    int64  `gorm:"column:user" json:"user"`

	// Office is the granting office the permission check matched, when one
	// was required for the transition.
	Office int64  `gorm:"column:office" json:"office"`
	Note   string `gorm:"column:note" json:"note,omitempty"`

	// Previous holds a JSON snapshot of the award before the transition,
	// for update and removal audits.
	Previous datatypes.JSON `gorm:"column:previous" json:"previous,omitempty"`

	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

// TableName overrides GORM's pluralization to match the legacy schema.
func (Action) TableName() string {
	return "actions"
}
