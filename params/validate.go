package params

// Validation runs in stages and collects every problem it finds; the joined
// error keeps a deterministic order (set order, then sorted table keys).
//
//  1. Sets: non-empty identifiers, unique within and across node sets,
//     plants/customers/products non-empty, suppliers non-empty whenever
//     recycling centers exist.
//  2. Facility, product and material tables: keys declared, every declared
//     member covered, numeric ranges.
//  3. Pair tables (BOM, demand, returns, distances): keys declared, values ≥ 0.
//  4. Scalars: transport rates ≥ 0, quality-mix caps in [0,1], default distance declared.

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

// Validate checks in without building a Bundle.
func Validate(in Input) error {
	v := &validator{}
	v.sets(in.Sets)
	v.facilities(in)
	v.pairs(in)
	v.scalars(in)

	return errors.Join(v.errs...)
}

type validator struct {
	errs []error

	nodes     map[string]string // node id → set name
	products  map[string]struct{}
	materials map[string]struct{}
}

func (v *validator) add(table, key string, err error, detail string) {
	v.errs = append(v.errs, configErr(table, key, err, detail))
}

func (v *validator) sets(s Sets) {
	v.nodes = make(map[string]string)
	named := []struct {
		name     string
		ids      []string
		required bool
	}{
		{"plants", s.Plants, true},
		{"customers", s.Customers, true},
		{"collection_centers", s.Collections, false},
		{"refurbish_centers", s.Refurbishers, false},
		{"recycling_centers", s.Recyclers, false},
		{"landfills", s.Landfills, false},
		{"suppliers", s.Suppliers, false},
	}
	for _, ns := range named {
		if ns.required && len(ns.ids) == 0 {
			v.add("sets", ns.name, ErrEmptySet, "")
		}
		for _, id := range ns.ids {
			if id == "" {
				v.add("sets", ns.name, ErrEmptySet, "blank identifier")
				continue
			}
			if prev, ok := v.nodes[id]; ok {
				v.add("sets", id, ErrDuplicateID, "declared in "+prev+" and "+ns.name)
				continue
			}
			v.nodes[id] = ns.name
		}
	}

	// Recovered material is only ever sold to suppliers; without one the
	// material balance would pin every recycling flow to zero.
	if len(s.Recyclers) > 0 && len(s.Suppliers) == 0 {
		v.add("sets", "suppliers", ErrEmptySet, "required when recycling_centers are declared")
	}
	if len(s.Products) == 0 {
		v.add("sets", "products", ErrEmptySet, "")
	}
	v.products = v.uniqueSet("products", s.Products)
	v.materials = v.uniqueSet("materials", s.Materials)
}

func (v *validator) uniqueSet(name string, ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			v.add("sets", name, ErrEmptySet, "blank identifier")
			continue
		}
		if _, ok := out[id]; ok {
			v.add("sets", id, ErrDuplicateID, "declared twice in "+name)
			continue
		}
		out[id] = struct{}{}
	}

	return out
}

// coverage checks that table keys are exactly members of the set named by
// setName; required=false skips the "every member covered" half.
func coverage[V any](v *validator, table, setName string, ids []string, m map[string]V, required bool) {
	declared := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		declared[id] = struct{}{}
		if _, ok := m[id]; !ok && required {
			v.add(table, id, ErrMissingEntry, "")
		}
	}
	for _, k := range sortedKeys(m) {
		if _, ok := declared[k]; !ok {
			v.add(table, k, ErrUndeclaredID, "not in "+setName)
		}
	}
}

func (v *validator) facilities(in Input) {
	s := in.Sets
	coverage(v, "plants", "plants", s.Plants, in.Plants, true)
	coverage(v, "collection_centers", "collection_centers", s.Collections, in.Collections, true)
	coverage(v, "refurbish_centers", "refurbish_centers", s.Refurbishers, in.Refurbishers, true)
	coverage(v, "recycling_centers", "recycling_centers", s.Recyclers, in.Recyclers, true)
	coverage(v, "landfills", "landfills", s.Landfills, in.Landfills, true)
	coverage(v, "suppliers", "suppliers", s.Suppliers, in.Suppliers, false)
	coverage(v, "products", "products", s.Products, in.Products, true)
	coverage(v, "materials", "materials", s.Materials, in.Materials, true)

	for _, id := range sortedKeys(in.Plants) {
		p := in.Plants[id]
		v.nonNegative("plants", id, "production_cost", p.ProductionCost)
		v.nonNegative("plants", id, "emission", p.Emission)
		v.capacity("plants", id, p.Capacity)
	}
	for _, id := range sortedKeys(in.Collections) {
		c := in.Collections[id]
		v.nonNegative("collection_centers", id, "unit_cost", c.UnitCost)
		v.nonNegative("collection_centers", id, "fixed_cost", c.FixedCost)
		v.nonNegative("collection_centers", id, "emission", c.Emission)
		v.capacity("collection_centers", id, c.Capacity)
	}
	for _, id := range sortedKeys(in.Refurbishers) {
		f := in.Refurbishers[id]
		v.nonNegative("refurbish_centers", id, "unit_cost", f.UnitCost)
		v.nonNegative("refurbish_centers", id, "fixed_cost", f.FixedCost)
		v.nonNegative("refurbish_centers", id, "emission", f.Emission)
		v.capacity("refurbish_centers", id, f.Capacity)
		v.fraction("refurbish_centers", id, "yield", f.Yield)
	}
	for _, id := range sortedKeys(in.Recyclers) {
		r := in.Recyclers[id]
		v.nonNegative("recycling_centers", id, "unit_cost", r.UnitCost)
		v.nonNegative("recycling_centers", id, "fixed_cost", r.FixedCost)
		v.nonNegative("recycling_centers", id, "emission", r.Emission)
		v.capacity("recycling_centers", id, r.Capacity)
		v.fraction("recycling_centers", id, "efficiency", r.Efficiency)
	}
	for _, id := range sortedKeys(in.Landfills) {
		l := in.Landfills[id]
		v.nonNegative("landfills", id, "disposal_cost", l.DisposalCost)
		v.nonNegative("landfills", id, "emission", l.Emission)
	}
	for _, id := range sortedKeys(in.Suppliers) {
		sp := in.Suppliers[id]
		v.nonNegative("suppliers", id, "bom_ratio", sp.BOMRatio)
		v.nonNegative("suppliers", id, "material_cost", sp.MaterialCost)
		v.nonNegative("suppliers", id, "unit_weight", sp.UnitWeight)
		v.nonNegative("suppliers", id, "emission", sp.Emission)
	}
	for _, id := range sortedKeys(in.Products) {
		p := in.Products[id]
		if !finite(p.Weight) || p.Weight <= 0 {
			v.add("products", id, ErrInvalidValue, "weight must be > 0")
		}
		v.nonNegative("products", id, "shortage_penalty", p.ShortagePenalty)
		v.nonNegative("products", id, "reuse_revenue", p.ReuseRevenue)
		v.nonNegative("products", id, "refurbish_revenue", p.RefurbishRevenue)
	}
	for _, id := range sortedKeys(in.Materials) {
		v.nonNegative("materials", id, "revenue", in.Materials[id].Revenue)
	}
}

func (v *validator) pairs(in Input) {
	for _, k := range sortedPairs(in.BOM) {
		if _, ok := v.products[k.A]; !ok {
			v.add("bom", k.A, ErrUndeclaredID, "not in products")
		}
		if _, ok := v.materials[k.B]; !ok {
			v.add("bom", k.B, ErrUndeclaredID, "not in materials")
		}
		v.nonNegative("bom", k.A+"/"+k.B, "kg", in.BOM[k])
	}
	for _, table := range []struct {
		name string
		m    map[Pair]float64
	}{{"demand", in.Demand}, {"returns", in.Returns}} {
		for _, k := range sortedPairs(table.m) {
			if v.nodes[k.A] != "customers" {
				v.add(table.name, k.A, ErrUndeclaredID, "not in customers")
			}
			if _, ok := v.products[k.B]; !ok {
				v.add(table.name, k.B, ErrUndeclaredID, "not in products")
			}
			v.nonNegative(table.name, k.A+"/"+k.B, "quantity", table.m[k])
		}
	}

	d := in.Distances
	if !d.declared {
		v.add("distance", "default", ErrNoDefaultDistance, "")
	} else {
		v.nonNegative("distance", "default", "km", d.def)
	}
	for _, k := range sortedPairs(d.pairs) {
		if _, ok := v.nodes[k.A]; !ok {
			v.add("distance", k.A, ErrUndeclaredID, "not a node")
		}
		if _, ok := v.nodes[k.B]; !ok {
			v.add("distance", k.B, ErrUndeclaredID, "not a node")
		}
		v.nonNegative("distance", k.A+"→"+k.B, "km", d.pairs[k])
	}
}

func (v *validator) scalars(in Input) {
	v.nonNegative("transport", "cost_rate", "value", in.Transport.CostRate)
	v.nonNegative("transport", "emission_rate", "value", in.Transport.EmissionRate)
	v.fraction("quality_mix", "reuse_cap", "value", in.QualityMix.ReuseCap)
	v.fraction("quality_mix", "refurbish_cap", "value", in.QualityMix.RefurbishCap)
}

func (v *validator) nonNegative(table, key, field string, x float64) {
	if !finite(x) || x < 0 {
		v.add(table, key, ErrInvalidValue, field+" must be finite and ≥ 0")
	}
}

func (v *validator) fraction(table, key, field string, x float64) {
	if !finite(x) || x < 0 || x > 1 {
		v.add(table, key, ErrInvalidValue, field+" must lie in [0,1]")
	}
}

func (v *validator) capacity(table, key string, c Capacity) {
	v.nonNegative(table, key, "capacity", c.Limit)
	if c.Unit != Mass && c.Unit != Count {
		v.add(table, key, ErrInvalidValue, "unknown capacity unit")
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func sortedPairs(m map[Pair]float64) []Pair {
	keys := make([]Pair, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y Pair) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}

		return cmp.Compare(x.B, y.B)
	})

	return keys
}
