package award

// Capability is the operation intent carried by an award payload.
type Capability string

// Capabilities. Self-targeted payloads are always forced to request;
// everything else requires a Hub role check.
const (
	CapRequest  Capability = "request"
	CapNominate Capability = "nominate"
	CapAward    Capability = "award"
	CapDeduct   Capability = "deduct"
	CapRemove   Capability = "remove"
	CapView     Capability = "view"
)

// Domain describes one award variant: the hierarchical prestige ledger or the
// flat VIP tier. It owns the recognized level fields and the mapping from
// capabilities to Hub role names, so role strings are never assembled at call
// sites.
type Domain struct {
	Name   string
	Levels []string
}

// Prestige is the hierarchical recognition domain.
var Prestige = Domain{
	Name:   "prestige",
	Levels: []string{"general", "regional", "national"},
}

// VIP is the flat-tier variant with a single level.
var VIP = Domain{
	Name:   "vip",
	Levels: []string{"vip"},
}

// leveled reports whether role names carry a level suffix. The flat VIP tier
// has no per-level roles.
func (d Domain) leveled() bool {
	return len(d.Levels) > 1
}

// Role returns the Hub role name for a capability at a level, e.g.
// prestige_award_national or vip_nominate.
func (d Domain) Role(cap Capability, level string) string {
	if d.leveled() && level != "" {
		return d.Name + "_" + string(cap) + "_" + level
	}
	return d.Name + "_" + string(cap)
}

// ViewRole returns the role gating non-public listings.
func (d Domain) ViewRole() string {
	return d.Name + "_view"
}

// HasLevel reports whether the domain recognizes the given level field.
func (d Domain) HasLevel(level string) bool {
	for _, l := range d.Levels {
		if l == level {
			return true
		}
	}
	return false
}
