package strategy

import (
	"github.com/google/uuid"

	"github.com/syssam/falsify/gen"
)

// UUIDStrategy draws random version 4 UUIDs.
type UUIDStrategy struct{}

// UUID returns the UUID strategy. Values simplify toward uuid.Nil by
// zeroing bytes from the end, so a shrunken counterexample keeps its most
// significant bytes the longest.
func UUID() *UUIDStrategy { return &UUIDStrategy{} }

// NewTree draws sixteen random bytes and stamps the version and variant
// bits.
func (*UUIDStrategy) NewTree(g *gen.Gen) gen.Outcome[ValueTree[uuid.UUID]] {
	var id uuid.UUID
	rng := g.Rand()
	for i := 0; i < len(id); i += 8 {
		word := rng.Uint64()
		for j := range 8 {
			id[i+j] = byte(word >> (8 * j))
		}
	}
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return gen.Accept(g, NewCandidateTree(id, uuidCandidates(id)))
}

// uuidCandidates zeroes the trailing byte runs one at a time, ending at
// uuid.Nil. Already-zero suffixes are skipped so every candidate is a
// strict step.
func uuidCandidates(id uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	current := id
	for i := len(current) - 1; i >= 0; i-- {
		if current[i] == 0 {
			continue
		}
		current[i] = 0
		out = append(out, current)
	}
	return out
}
