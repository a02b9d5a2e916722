package params

import (
	"fmt"
	"strings"
)

// Unit is the declared unit of a facility capacity.
type Unit uint8

const (
	// Mass capacities are compared against weight-scaled throughput (kg).
	Mass Unit = iota
	// Count capacities are compared against unit throughput.
	Count
)

func (u Unit) String() string {
	switch u {
	case Mass:
		return "mass"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit accepts "mass"/"kg" and "count"/"units".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mass", "kg":
		return Mass, nil
	case "count", "units", "unit":
		return Count, nil
	default:
		return 0, fmt.Errorf("%w: unknown capacity unit %q", ErrInvalidValue, s)
	}
}

// Capacity is a throughput limit in a declared unit.
type Capacity struct {
	Limit float64
	Unit  Unit
}

// Coefficient returns the per-unit load a product of the given weight puts on
// this capacity: the weight for mass capacities, 1 for count capacities.
func (c Capacity) Coefficient(weight float64) float64 {
	if c.Unit == Mass {
		return weight
	}

	return 1
}

// Pair keys two-identifier tables: (customer, product) for demand/returns,
// (product, material) for the BOM and (from, to) for distances.
type Pair struct {
	A, B string
}

// Plant parameters. Costs and emissions are per produced unit.
type Plant struct {
	ProductionCost float64
	Emission       float64
	Capacity       Capacity
}

// Collection center parameters. Costs and emissions are per collected unit.
type Collection struct {
	UnitCost  float64
	FixedCost float64
	Emission  float64
	Capacity  Capacity
}

// Refurbish center parameters. Costs and emissions are per received unit;
// Yield is the fraction of received units that leave as recovered units.
type Refurbish struct {
	UnitCost  float64
	FixedCost float64
	Emission  float64
	Capacity  Capacity
	Yield     float64
}

// Recycling center parameters. Costs and emissions are per kg received;
// Efficiency is recovered material mass over input material mass.
type Recycling struct {
	UnitCost   float64
	FixedCost  float64
	Emission   float64
	Capacity   Capacity
	Efficiency float64
}

// Landfill parameters, per kg disposed.
type Landfill struct {
	DisposalCost float64 `yaml:"disposal_cost"`
	Emission     float64 `yaml:"emission"`
}

// Supplier parameters for the procurement linkage: BOMRatio input units per
// produced unit, priced, weighed and emitted per input unit.
type Supplier struct {
	BOMRatio     float64 `yaml:"bom_ratio"`
	MaterialCost float64 `yaml:"material_cost"`
	UnitWeight   float64 `yaml:"unit_weight"`
	Emission     float64 `yaml:"emission"`
}

// Product type parameters.
type Product struct {
	Weight           float64 `yaml:"weight"`            // kg per unit, > 0
	ShortagePenalty  float64 `yaml:"shortage_penalty"`  // per unit of unmet demand
	ReuseRevenue     float64 `yaml:"reuse_revenue"`     // per unit sent back to customers for reuse
	RefurbishRevenue float64 `yaml:"refurbish_revenue"` // per refurbished unit returned to a plant
}

// Material parameters.
type Material struct {
	Revenue float64 `yaml:"revenue"` // per kg of recycled material sold
}

// Transport rates applied to mass·distance on every arc.
type Transport struct {
	CostRate     float64 // currency per kg-km
	EmissionRate float64 // emission per kg-km
}

// QualityMix caps the fraction of collected returns that can be routed to
// reuse and to refurbishment. The two caps are enforced independently.
type QualityMix struct {
	ReuseCap     float64
	RefurbishCap float64
}

// Sets lists the identifiers of every echelon plus products and materials.
type Sets struct {
	Plants       []string
	Customers    []string
	Collections  []string
	Refurbishers []string
	Recyclers    []string
	Landfills    []string
	Suppliers    []string
	Products     []string
	Materials    []string
}

// Input is the mutable description a Bundle is built from.
type Input struct {
	Sets Sets

	Plants       map[string]Plant
	Collections  map[string]Collection
	Refurbishers map[string]Refurbish
	Recyclers    map[string]Recycling
	Landfills    map[string]Landfill
	Suppliers    map[string]Supplier
	Products     map[string]Product
	Materials    map[string]Material

	BOM     map[Pair]float64 // (product, material) → kg per unit
	Demand  map[Pair]float64 // (customer, product) → units
	Returns map[Pair]float64 // (customer, product) → units

	Distances  DistanceTable
	Transport  Transport
	QualityMix QualityMix
}
