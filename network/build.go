package network

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
	"github.com/katalvlaran/loopchain/params"
)

// Network is a built model together with its objectives and variable index.
type Network struct {
	Model         *model.Model
	Cost          *model.Expr
	Environmental *model.Expr
	Breakdown     Breakdown
	Index         Index
	Features      Features

	counts   map[string]int
	families []string
}

// Counts returns the number of emitted rows per constraint family.
func (n *Network) Counts() map[string]int { return maps.Clone(n.counts) }

// Families returns the constraint family names in emission order.
func (n *Network) Families() []string { return append([]string(nil), n.families...) }

// Build constructs every variable and constraint of the selected variant and
// composes both objectives. The bundle is only read.
func Build(b *params.Bundle, opts ...Option) (*Network, error) {
	if b == nil {
		return nil, ErrNilBundle
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bl := &builder{
		b:      b,
		s:      b.Sets(),
		f:      o.features,
		m:      model.New(),
		idx:    newIndex(),
		counts: make(map[string]int),
	}
	if err := bl.load(); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	bl.variables()
	steps := []func() error{
		bl.demand,
		bl.returns,
		bl.collection,
		bl.quality,
		bl.plant,
		bl.refurbish,
		bl.material,
		bl.capacity,
		bl.linkage,
		bl.batches,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	n := &Network{
		Model:    bl.m,
		Index:    bl.idx,
		Features: bl.f,
		counts:   bl.counts,
		families: bl.families,
	}
	n.Breakdown = bl.objectives()
	n.Cost = n.Breakdown.Cost()
	n.Environmental = n.Breakdown.Environmental()

	log := o.logger.WithValues("features", bl.f.String())
	log.V(logging.DEBUG).Info("network built",
		"variables", bl.m.NumVars(),
		"binaries", len(bl.m.Binaries()),
		"constraints", bl.m.NumConstraints(),
		"skipped", bl.skipped)
	for _, fam := range bl.families {
		log.V(logging.TRACE).Info("constraint family", "family", fam, "rows", bl.counts[fam])
	}

	return n, nil
}

type builder struct {
	b   *params.Bundle
	s   params.Sets
	f   Features
	m   *model.Model
	idx Index

	counts   map[string]int
	families []string
	skipped  int

	plants       map[string]params.Plant
	collections  map[string]params.Collection
	refurbishers map[string]params.Refurbish
	recyclers    map[string]params.Recycling
	landfills    map[string]params.Landfill
	suppliers    map[string]params.Supplier
	products     map[string]params.Product
	materials    map[string]params.Material
}

func resolve[V any](ids []string, get func(string) (V, error), errs *[]error) map[string]V {
	out := make(map[string]V, len(ids))
	for _, id := range ids {
		v, err := get(id)
		if err != nil {
			*errs = append(*errs, err)
			continue
		}
		out[id] = v
	}

	return out
}

// load resolves every entry the variant needs before any variable exists.
func (bl *builder) load() error {
	var errs []error
	bl.plants = resolve(bl.s.Plants, bl.b.Plant, &errs)
	bl.collections = resolve(bl.s.Collections, bl.b.Collection, &errs)
	bl.refurbishers = resolve(bl.s.Refurbishers, bl.b.Refurbisher, &errs)
	bl.recyclers = resolve(bl.s.Recyclers, bl.b.Recycler, &errs)
	bl.landfills = resolve(bl.s.Landfills, bl.b.Landfill, &errs)
	bl.products = resolve(bl.s.Products, bl.b.Product, &errs)
	bl.materials = resolve(bl.s.Materials, bl.b.Material, &errs)
	if bl.f.Has(SupplierLinkage) {
		bl.suppliers = resolve(bl.s.Suppliers, bl.b.Supplier, &errs)
	}

	return errors.Join(errs...)
}

func varName(prefix string, parts ...string) string {
	return prefix + "[" + strings.Join(parts, ",") + "]"
}

func (bl *builder) cont(prefix string, parts ...string) model.Var {
	return bl.m.AddVar(varName(prefix, parts...), model.Continuous)
}

func (bl *builder) variables() {
	s, idx := bl.s, bl.idx
	for _, p := range s.Plants {
		for _, k := range s.Products {
			idx.Production[Key{p, k}] = bl.cont("X", p, k)
		}
	}
	for _, p := range s.Plants {
		for _, c := range s.Customers {
			for _, k := range s.Products {
				idx.Shipment[Arc{p, c, k}] = bl.cont("Xs", p, c, k)
			}
		}
	}
	for _, c := range s.Customers {
		for _, k := range s.Products {
			idx.Shortage[Key{c, k}] = bl.cont("S", c, k)
		}
	}
	for _, o := range s.Collections {
		for _, k := range s.Products {
			for _, c := range s.Customers {
				idx.Collected[Arc{c, o, k}] = bl.cont("Yc", c, o, k)
				idx.Reuse[Arc{o, c, k}] = bl.cont("Yu", o, c, k)
			}
			for _, f := range s.Refurbishers {
				idx.Refurbish[Arc{o, f, k}] = bl.cont("Yf", o, f, k)
			}
			for _, r := range s.Recyclers {
				idx.Recycle[Arc{o, r, k}] = bl.cont("Yr", o, r, k)
			}
			for _, l := range s.Landfills {
				idx.Landfill[Arc{o, l, k}] = bl.cont("Yl", o, l, k)
			}
		}
	}
	for _, f := range s.Refurbishers {
		for _, k := range s.Products {
			for _, p := range s.Plants {
				idx.Recovered[Arc{f, p, k}] = bl.cont("Yp", f, p, k)
			}
			if bl.f.Has(RefurbishWaste) {
				for _, l := range s.Landfills {
					idx.RefurbWaste[Arc{f, l, k}] = bl.cont("Yw", f, l, k)
				}
			}
		}
	}
	for _, r := range s.Recyclers {
		for _, sp := range s.Suppliers {
			for _, mt := range s.Materials {
				idx.Material[Arc{r, sp, mt}] = bl.cont("Z", r, sp, mt)
			}
		}
	}
	if bl.f.Has(SupplierLinkage) {
		for _, sp := range s.Suppliers {
			for _, p := range s.Plants {
				idx.Procurement[Arc{sp, p, ""}] = bl.cont("Zp", sp, p)
			}
		}
	}
	for _, group := range [][]string{s.Collections, s.Refurbishers, s.Recyclers} {
		for _, id := range group {
			idx.Open[id] = bl.m.AddVar(varName("W", id), model.Binary)
		}
	}
	if bl.f.Has(ArcDisaggregation) {
		for _, c := range s.Customers {
			for _, o := range s.Collections {
				for _, k := range s.Products {
					for _, d := range s.Customers {
						idx.BatchReuse[Batch{c, o, d, k}] = bl.cont("Bu", c, o, d, k)
					}
					for _, d := range s.Refurbishers {
						idx.BatchRefurbish[Batch{c, o, d, k}] = bl.cont("Bf", c, o, d, k)
					}
					for _, d := range s.Recyclers {
						idx.BatchRecycle[Batch{c, o, d, k}] = bl.cont("Br", c, o, d, k)
					}
					for _, d := range s.Landfills {
						idx.BatchLandfill[Batch{c, o, d, k}] = bl.cont("Bl", c, o, d, k)
					}
				}
			}
		}
	}
}

// row emits e rel bound under family. An empty expression whose relation
// already holds at zero carries no information and is skipped.
func (bl *builder) row(family string, e *model.Expr, rel model.Relation, bound float64, parts ...string) error {
	if e.Empty() && rel.Satisfied(e.Constant(), bound, 0) {
		bl.skipped++
		return nil
	}
	if _, err := bl.m.AddConstraint(varName(family, parts...), e, rel, bound); err != nil {
		return fmt.Errorf("network: %s: %w", family, err)
	}
	if _, seen := bl.counts[family]; !seen {
		bl.families = append(bl.families, family)
	}
	bl.counts[family]++

	return nil
}

// inflow is Σ_c Y_cok for collection center o.
func (bl *builder) inflow(o, k string) *model.Expr {
	e := model.NewExpr()
	for _, c := range bl.s.Customers {
		e.Add(bl.idx.Collected[Arc{c, o, k}], 1)
	}

	return e
}

// outflow is Σ_to vars[o→to,k] over the given destinations.
func outflow(vars map[Arc]model.Var, o, k string, to []string) *model.Expr {
	e := model.NewExpr()
	for _, d := range to {
		e.Add(vars[Arc{o, d, k}], 1)
	}

	return e
}

func (bl *builder) demand() error {
	s := bl.s
	for _, c := range s.Customers {
		for _, k := range s.Products {
			e := model.NewExpr().Add(bl.idx.Shortage[Key{c, k}], 1)
			for _, p := range s.Plants {
				e.Add(bl.idx.Shipment[Arc{p, c, k}], 1)
			}
			for _, o := range s.Collections {
				e.Add(bl.idx.Reuse[Arc{o, c, k}], 1)
			}
			if err := bl.row("demand", e, model.EQ, bl.b.Demand(c, k), c, k); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) returns() error {
	rel := model.LE
	if bl.f.Has(ReturnsEquality) {
		rel = model.EQ
	}
	s := bl.s
	for _, c := range s.Customers {
		for _, k := range s.Products {
			e := model.NewExpr()
			for _, o := range s.Collections {
				e.Add(bl.idx.Collected[Arc{c, o, k}], 1)
			}
			if err := bl.row("returns", e, rel, bl.b.Returns(c, k), c, k); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) collection() error {
	s := bl.s
	for _, o := range s.Collections {
		for _, k := range s.Products {
			e := bl.inflow(o, k)
			e.AddExpr(outflow(bl.idx.Reuse, o, k, s.Customers), -1)
			e.AddExpr(outflow(bl.idx.Refurbish, o, k, s.Refurbishers), -1)
			e.AddExpr(outflow(bl.idx.Recycle, o, k, s.Recyclers), -1)
			e.AddExpr(outflow(bl.idx.Landfill, o, k, s.Landfills), -1)
			if err := bl.row("collection", e, model.EQ, 0, o, k); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) quality() error {
	var (
		s  = bl.s
		qm = bl.b.QualityMix()
	)
	for _, o := range s.Collections {
		for _, k := range s.Products {
			in := bl.inflow(o, k)
			reuse := outflow(bl.idx.Reuse, o, k, s.Customers).AddExpr(in, -qm.ReuseCap)
			if err := bl.row("quality_reuse", reuse, model.LE, 0, o, k); err != nil {
				return err
			}
			ref := outflow(bl.idx.Refurbish, o, k, s.Refurbishers).AddExpr(in, -qm.RefurbishCap)
			if err := bl.row("quality_refurbish", ref, model.LE, 0, o, k); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) plant() error {
	s := bl.s
	for _, p := range s.Plants {
		for _, k := range s.Products {
			e := model.NewExpr().Add(bl.idx.Production[Key{p, k}], 1)
			for _, f := range s.Refurbishers {
				e.Add(bl.idx.Recovered[Arc{f, p, k}], 1)
			}
			for _, c := range s.Customers {
				e.Add(bl.idx.Shipment[Arc{p, c, k}], -1)
			}
			if err := bl.row("plant", e, model.EQ, 0, p, k); err != nil {
				return err
			}
		}
	}

	return nil
}

// refurbish emits the yield row and, with RefurbishWaste, the residual row.
func (bl *builder) refurbish() error {
	s := bl.s
	for _, f := range s.Refurbishers {
		alpha := bl.refurbishers[f].Yield
		for _, k := range s.Products {
			received := model.NewExpr()
			for _, o := range s.Collections {
				received.Add(bl.idx.Refurbish[Arc{o, f, k}], 1)
			}
			y := outflow(bl.idx.Recovered, f, k, s.Plants).AddExpr(received, -alpha)
			if err := bl.row("yield", y, model.EQ, 0, f, k); err != nil {
				return err
			}
			if !bl.f.Has(RefurbishWaste) {
				continue
			}
			w := outflow(bl.idx.RefurbWaste, f, k, s.Landfills).AddExpr(received, -(1 - alpha))
			if err := bl.row("waste", w, model.EQ, 0, f, k); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) material() error {
	s := bl.s
	for _, r := range s.Recyclers {
		beta := bl.recyclers[r].Efficiency
		for _, mt := range s.Materials {
			e := model.NewExpr()
			for _, sp := range s.Suppliers {
				e.Add(bl.idx.Material[Arc{r, sp, mt}], 1)
			}
			for _, o := range s.Collections {
				for _, k := range s.Products {
					e.Add(bl.idx.Recycle[Arc{o, r, k}], -beta*bl.b.BOM(k, mt))
				}
			}
			if err := bl.row("material", e, model.EQ, 0, r, mt); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bl *builder) capacity() error {
	s := bl.s
	for _, p := range s.Plants {
		pl := bl.plants[p]
		e := model.NewExpr()
		for _, k := range s.Products {
			e.Add(bl.idx.Production[Key{p, k}], pl.Capacity.Coefficient(bl.products[k].Weight))
		}
		if err := bl.row("capacity", e, model.LE, pl.Capacity.Limit, p); err != nil {
			return err
		}
	}

	// gated emits Σ coef·inbound − cap·W_id ≤ 0.
	gated := func(id string, c params.Capacity, vars map[Arc]model.Var, from []string) error {
		e := model.NewExpr().Add(bl.idx.Open[id], -c.Limit)
		for _, x := range from {
			for _, k := range s.Products {
				e.Add(vars[Arc{x, id, k}], c.Coefficient(bl.products[k].Weight))
			}
		}

		return bl.row("capacity", e, model.LE, 0, id)
	}
	for _, o := range s.Collections {
		if err := gated(o, bl.collections[o].Capacity, bl.idx.Collected, s.Customers); err != nil {
			return err
		}
	}
	for _, f := range s.Refurbishers {
		if err := gated(f, bl.refurbishers[f].Capacity, bl.idx.Refurbish, s.Collections); err != nil {
			return err
		}
	}
	for _, r := range s.Recyclers {
		if err := gated(r, bl.recyclers[r].Capacity, bl.idx.Recycle, s.Collections); err != nil {
			return err
		}
	}

	return nil
}

func (bl *builder) linkage() error {
	if !bl.f.Has(SupplierLinkage) {
		return nil
	}
	s := bl.s
	for _, sp := range s.Suppliers {
		ratio := bl.suppliers[sp].BOMRatio
		for _, p := range s.Plants {
			e := model.NewExpr().Add(bl.idx.Procurement[Arc{sp, p, ""}], 1)
			for _, k := range s.Products {
				e.Add(bl.idx.Production[Key{p, k}], -ratio)
			}
			if err := bl.row("linkage", e, model.EQ, 0, sp, p); err != nil {
				return err
			}
		}
	}

	return nil
}

// batches emits the arc-disaggregated rows: per-batch conservation, the
// aggregate linking equalities and per-batch quality-mix.
func (bl *builder) batches() error {
	if !bl.f.Has(ArcDisaggregation) {
		return nil
	}
	var (
		s   = bl.s
		qm  = bl.b.QualityMix()
		idx = bl.idx
	)
	sum := func(vars map[Batch]model.Var, c, o, k string, dests []string) *model.Expr {
		e := model.NewExpr()
		for _, d := range dests {
			e.Add(vars[Batch{c, o, d, k}], 1)
		}

		return e
	}
	for _, c := range s.Customers {
		for _, o := range s.Collections {
			for _, k := range s.Products {
				collected := idx.Collected[Arc{c, o, k}]
				reuse := sum(idx.BatchReuse, c, o, k, s.Customers)
				ref := sum(idx.BatchRefurbish, c, o, k, s.Refurbishers)

				cons := model.Sum(reuse, ref,
					sum(idx.BatchRecycle, c, o, k, s.Recyclers),
					sum(idx.BatchLandfill, c, o, k, s.Landfills)).
					Scale(-1).Add(collected, 1)
				if err := bl.row("batch_conservation", cons, model.EQ, 0, c, o, k); err != nil {
					return err
				}
				qr := reuse.Clone().Add(collected, -qm.ReuseCap)
				if err := bl.row("batch_quality_reuse", qr, model.LE, 0, c, o, k); err != nil {
					return err
				}
				qf := ref.Clone().Add(collected, -qm.RefurbishCap)
				if err := bl.row("batch_quality_refurbish", qf, model.LE, 0, c, o, k); err != nil {
					return err
				}
			}
		}
	}

	link := func(agg map[Arc]model.Var, vars map[Batch]model.Var, dests []string) error {
		for _, o := range s.Collections {
			for _, d := range dests {
				for _, k := range s.Products {
					e := model.NewExpr().Add(agg[Arc{o, d, k}], 1)
					for _, c := range s.Customers {
						e.Add(vars[Batch{c, o, d, k}], -1)
					}
					if err := bl.row("batch_link", e, model.EQ, 0, o, d, k); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
	if err := link(idx.Reuse, idx.BatchReuse, s.Customers); err != nil {
		return err
	}
	if err := link(idx.Refurbish, idx.BatchRefurbish, s.Refurbishers); err != nil {
		return err
	}
	if err := link(idx.Recycle, idx.BatchRecycle, s.Recyclers); err != nil {
		return err
	}

	return link(idx.Landfill, idx.BatchLandfill, s.Landfills)
}
