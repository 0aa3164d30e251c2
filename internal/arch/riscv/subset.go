package riscv

import (
	"fmt"
	"strings"
)

// baseSubsets is the canonical ordered extension alphabet. The G shorthand
// expands to all of them, and bare extension letters are only accepted in
// this relative order.
const baseSubsets = "IMAFDC"

// SubsetSet is the ordered collection of enabled ISA extensions built from
// one architecture string. The empty set is a wildcard that accepts every
// subset requirement.
type SubsetSet []string

// Wildcard reports whether the set accepts all subset requirements.
func (s SubsetSet) Wildcard() bool {
	return len(s) == 0
}

// Supports reports whether the given opcode subset requirement is satisfied.
// A leading numeric XLEN constraint in the requirement is skipped here; it is
// checked separately against the active word width.
func (s SubsetSet) Supports(requirement string) bool {
	if s.Wildcard() {
		return true
	}
	name := strings.TrimLeft(requirement, "0123456789")
	for _, enabled := range s {
		if strings.EqualFold(enabled, name) {
			return true
		}
	}
	return false
}

func (s SubsetSet) String() string {
	if s.Wildcard() {
		return "all"
	}
	return strings.Join(s, ",")
}

// chipArchs maps chip names to their canonical architecture strings.
// Names are matched case-insensitively as substrings, so board variants
// like "gap8_v2" still resolve.
var chipArchs = []struct {
	name string
	arch string
}{
	{"PULPINO", "RV32IMCXpulpv1"},
	{"HONEY", "RV32IMCXpulpv0"},
	{"GAP8", "RV32IMCXgap8"},
	{"GAP9", "RV32IMCXgap9"},
}

// ResolveChip resolves a chip name to its canonical architecture string.
func ResolveChip(name string) (string, bool) {
	upper := strings.ToUpper(name)
	for _, chip := range chipArchs {
		if strings.Contains(upper, chip.name) {
			return chip.arch, true
		}
	}
	return "", false
}

// ParseArch parses an architecture string like "RV32IMAFDC" or
// "RV32IMCXgap8" into the set of enabled subsets.
//
// The leading RV32/RV64/RV prefix is optional. The list must start with I,
// or with G (or nothing), which expands to the full base set. Each base
// extension letter is consumable once and only in canonical relative order,
// an underscore separates tokens and an X token names a single custom
// extension. C is always enabled at the end since compressed support is a
// runtime toggle rather than an architecture requirement.
//
// On any error the returned set is empty, which is the wildcard accept-all
// state; partial results are never kept.
func ParseArch(arch string) (SubsetSet, error) {
	var subsets SubsetSet

	p := strings.ToUpper(arch)
	switch {
	case strings.HasPrefix(p, "RV32"), strings.HasPrefix(p, "RV64"):
		p = p[4:]
	case strings.HasPrefix(p, "RV"):
		p = p[2:]
	}

	remaining := baseSubsets
	rvc := false

	switch {
	case p == "" || p[0] == 'G':
		for _, letter := range baseSubsets {
			subsets = append(subsets, string(letter))
		}
		rvc = true
		if p != "" {
			p = p[1:]
		}
	case p[0] == 'I':
		// explicit subset list follows
	default:
		return nil, fmt.Errorf("'I' must be the first ISA subset name specified (got %c)", p[0])
	}

	extension := ""
	for len(p) > 0 {
		switch {
		case p[0] == 'X':
			// The token runs to the next separator or the start of another
			// X token, so back to back custom extensions are two tokens.
			end := len(p)
			for i := 1; i < len(p); i++ {
				if p[i] == '_' || p[i] == 'X' {
					end = i
					break
				}
			}
			token := p[:end]
			if extension != "" {
				return nil, fmt.Errorf("only one eXtension is supported (found %s and %s)", extension, token)
			}
			extension = token
			subsets = append(subsets, token)
			p = p[len(token):]

		case p[0] == '_':
			p = p[1:]

		default:
			i := strings.IndexByte(remaining, p[0])
			if i < 0 {
				return nil, fmt.Errorf("unsupported ISA subset %c", p[0])
			}
			subsets = append(subsets, string(p[0]))
			if p[0] == 'C' {
				rvc = true
			}
			remaining = remaining[i+1:]
			p = p[1:]
		}
	}

	if !rvc {
		// Add RVC anyway, -m[no-]rvc toggles its availability.
		subsets = append(subsets, "C")
	}

	return subsets, nil
}
