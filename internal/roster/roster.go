// Package roster resolves free-text expert names from the legacy catalogs
// against the canonical experts table.
package roster

import (
	"strings"

	"github.com/statustracker/probsync/internal/types"
)

// Resolver maps human-entered name variants to expert IDs.
type Resolver struct {
	names   map[string]int    // lowercased full name and first name -> id
	aliases map[string]string // short informal name -> lowercased full name
}

// New builds a resolver from the roster. Every expert registers its
// lowercased full name; the lowercased first token is registered too, but
// only if no earlier expert claimed it (first registrant wins, later
// collisions are dropped). The alias table maps short informal names to
// full names and is consulted only after direct and first-name lookup miss.
func New(experts []types.Expert, aliases map[string]string) *Resolver {
	r := &Resolver{
		names:   make(map[string]int, len(experts)*2),
		aliases: aliases,
	}
	for _, e := range experts {
		full := strings.ToLower(strings.TrimSpace(e.Name))
		if full == "" {
			continue
		}
		r.names[full] = e.ID
		first := strings.Fields(full)[0]
		if _, claimed := r.names[first]; !claimed {
			r.names[first] = e.ID
		}
	}
	return r
}

// Len returns the number of registered name keys.
func (r *Resolver) Len() int {
	return len(r.names)
}

// Resolve maps a name to an expert ID. Match order: exact lowercased name,
// first token, alias. A miss is (0, false), never an error: unresolved
// assignees become null role columns, they don't fail the row.
func (r *Resolver) Resolve(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}

	if id, ok := r.names[name]; ok {
		return id, true
	}

	if fields := strings.Fields(name); len(fields) > 0 {
		if id, ok := r.names[fields[0]]; ok {
			return id, true
		}
	}

	if full, ok := r.aliases[name]; ok {
		if id, ok := r.names[full]; ok {
			return id, true
		}
	}

	return 0, false
}

// DefaultAliases returns the short-name table accumulated from the legacy
// catalogs. Keys and values are lowercase; values must match a roster name
// exactly or the alias is a no-op.
func DefaultAliases() map[string]string {
	return map[string]string{
		"rob":     "robert alward",
		"jerry":   "jerry song",
		"alex":    "alex ishin",
		"phil":    "philip garbarini",
		"zach":    "zach barry",
		"ryan":    "ryan diebner",
		"jackson": "jackson ozello",
		"arielle": "arielle flynn",
		"josh":    "josh miller",
		"sneh":    "sneh kumar",
		"kavi":    "kavi munjal",
		"lindsay": "lindsay saldebar",
		"frank":   "frank mork",
		"prem":    "prem patel",
		"tyler":   "tyler patterson",
		"haylee":  "haylee glenn",
		"jack":    "jack barnett",
		"minesh":  "minesh patel",
		"jason":   "jason dotzel",
		"wyatt":   "wyatt morgan",
		"will":    "will chen",
		"justin":  "justin hwang",
	}
}
