// Package descriptor names the protein feature descriptors the pipeline can
// compute and wraps the external toolkits that compute them. POSSUM
// descriptors are derived from per-protein PSSM matrices; iFeature
// descriptors are computed from the sequence alone.
package descriptor

import (
	"errors"
	"fmt"
)

// Family identifies which toolkit computes a descriptor.
type Family int

const (
	FamilyPOSSUM Family = iota
	FamilyIFeature
)

func (f Family) String() string {
	switch f {
	case FamilyPOSSUM:
		return "POSSUM"
	case FamilyIFeature:
		return "iFeature"
	}
	return "unknown"
}

// Aliases that expand to every descriptor of their family.
const (
	AllPOSSUM   = "all_POSSUM"
	AllIFeature = "all_iFeature"
)

// ErrUnknown is returned when a requested descriptor is not in either
// family's vocabulary.
var ErrUnknown = errors.New("unknown protein feature")

var possumNames = []string{
	"aac_pssm",
	"d_fpssm",
	"smoothed_pssm",
	"ab_pssm",
	"pssm_composition",
	"rpm_pssm",
	"s_fpssm",
	"dpc_pssm",
	"k_separated_bigrams_pssm",
	"eedp",
	"tpc",
	"edp",
	"rpssm",
	"pse_pssm",
	"dp_pssm",
	"pssm_ac",
	"pssm_cc",
	"aadp_pssm",
	"aatp",
	"medp",
}

var ifeatureNames = []string{
	"AAC",
	"PAAC",
	"APAAC",
	"DPC",
	"GAAC",
	"CKSAAP",
	"CKSAAGP",
	"GDPC",
	"Moran",
	"Geary",
	"NMBroto",
	"CTDC",
	"CTDD",
	"CTDT",
	"CTriad",
	"KSCTriad",
	"SOCNumber",
	"QSOrder",
}

// Resolve maps a requested feature name to its family and the list of
// concrete descriptors to compute. The all_* aliases expand to the whole
// family in its canonical order.
func Resolve(name string) (Family, []string, error) {
	switch name {
	case AllPOSSUM:
		return FamilyPOSSUM, Names(FamilyPOSSUM), nil
	case AllIFeature:
		return FamilyIFeature, Names(FamilyIFeature), nil
	}
	for _, n := range possumNames {
		if n == name {
			return FamilyPOSSUM, []string{name}, nil
		}
	}
	for _, n := range ifeatureNames {
		if n == name {
			return FamilyIFeature, []string{name}, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names returns the family's descriptor vocabulary in canonical order.
func Names(f Family) []string {
	var src []string
	switch f {
	case FamilyPOSSUM:
		src = possumNames
	case FamilyIFeature:
		src = ifeatureNames
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
