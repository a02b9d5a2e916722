package network

import (
	"fmt"

	"github.com/katalvlaran/loopchain/model"
)

// Breakdown holds the named objective components. Every component is a live
// expression over the model's variables.
//
//	Cost          = Fixed + Operating + Transport + Shortage − Revenue
//	Environmental = EnvOperating + EnvTransport
type Breakdown struct {
	Fixed     *model.Expr
	Operating *model.Expr
	Transport *model.Expr
	Shortage  *model.Expr
	Revenue   *model.Expr

	EnvOperating *model.Expr
	EnvTransport *model.Expr

	// MassDistance is Σ distance·kg over every arc, in kg-km.
	MassDistance *model.Expr
}

// Cost composes the cost objective from its components.
func (b Breakdown) Cost() *model.Expr {
	return model.Sum(b.Fixed, b.Operating, b.Transport, b.Shortage).AddExpr(b.Revenue, -1)
}

// Environmental composes the environmental objective. Revenue earns no credit.
func (b Breakdown) Environmental() *model.Expr {
	return model.Sum(b.EnvOperating, b.EnvTransport)
}

// Components are realized objective values.
type Components struct {
	Fixed, Operating, Transport, Shortage, Revenue float64
	Cost                                           float64
	EnvOperating, EnvTransport                     float64
	Environmental                                  float64
	MassDistance                                   float64
}

// Evaluate realizes every component through valueOf, typically an oracle's
// ValueOf after a successful Optimize.
func (b Breakdown) Evaluate(valueOf func(*model.Expr) (float64, error)) (Components, error) {
	var c Components
	for _, it := range []struct {
		dst *float64
		e   *model.Expr
	}{
		{&c.Fixed, b.Fixed},
		{&c.Operating, b.Operating},
		{&c.Transport, b.Transport},
		{&c.Shortage, b.Shortage},
		{&c.Revenue, b.Revenue},
		{&c.EnvOperating, b.EnvOperating},
		{&c.EnvTransport, b.EnvTransport},
		{&c.MassDistance, b.MassDistance},
	} {
		v, err := valueOf(it.e)
		if err != nil {
			return Components{}, fmt.Errorf("network: evaluate component: %w", err)
		}
		*it.dst = v
	}
	c.Cost = c.Fixed + c.Operating + c.Transport + c.Shortage - c.Revenue
	c.Environmental = c.EnvOperating + c.EnvTransport

	return c, nil
}

func (bl *builder) objectives() Breakdown {
	var (
		s   = bl.s
		idx = bl.idx
		tr  = bl.b.Transport()
		b   = Breakdown{
			Fixed:        model.NewExpr(),
			Operating:    model.NewExpr(),
			Shortage:     model.NewExpr(),
			Revenue:      model.NewExpr(),
			EnvOperating: model.NewExpr(),
			MassDistance: model.NewExpr(),
		}
	)
	weight := func(k string) float64 { return bl.products[k].Weight }

	// Fixed opening costs.
	for _, o := range s.Collections {
		b.Fixed.Add(idx.Open[o], bl.collections[o].FixedCost)
	}
	for _, f := range s.Refurbishers {
		b.Fixed.Add(idx.Open[f], bl.refurbishers[f].FixedCost)
	}
	for _, r := range s.Recyclers {
		b.Fixed.Add(idx.Open[r], bl.recyclers[r].FixedCost)
	}

	// Operating cost and emission, per unit or per kg as declared.
	for key, v := range idx.Production {
		pl := bl.plants[key.Node]
		b.Operating.Add(v, pl.ProductionCost)
		b.EnvOperating.Add(v, pl.Emission)
	}
	for a, v := range idx.Collected {
		oc := bl.collections[a.To]
		b.Operating.Add(v, oc.UnitCost)
		b.EnvOperating.Add(v, oc.Emission)
	}
	for a, v := range idx.Refurbish {
		fc := bl.refurbishers[a.To]
		b.Operating.Add(v, fc.UnitCost)
		b.EnvOperating.Add(v, fc.Emission)
	}
	for a, v := range idx.Recycle {
		rc := bl.recyclers[a.To]
		b.Operating.Add(v, rc.UnitCost*weight(a.Item))
		b.EnvOperating.Add(v, rc.Emission*weight(a.Item))
	}
	for _, disposal := range []map[Arc]model.Var{idx.Landfill, idx.RefurbWaste} {
		for a, v := range disposal {
			lf := bl.landfills[a.To]
			b.Operating.Add(v, lf.DisposalCost*weight(a.Item))
			b.EnvOperating.Add(v, lf.Emission*weight(a.Item))
		}
	}
	for a, v := range idx.Procurement {
		sp := bl.suppliers[a.From]
		b.Operating.Add(v, sp.MaterialCost)
		b.EnvOperating.Add(v, sp.Emission)
	}

	// Transport: every arc contributes distance·kg once.
	for _, product := range []map[Arc]model.Var{
		idx.Shipment, idx.Collected, idx.Reuse, idx.Refurbish,
		idx.Recycle, idx.Landfill, idx.Recovered, idx.RefurbWaste,
	} {
		for a, v := range product {
			b.MassDistance.Add(v, bl.b.Distance(a.From, a.To)*weight(a.Item))
		}
	}
	for a, v := range idx.Material {
		b.MassDistance.Add(v, bl.b.Distance(a.From, a.To))
	}
	for a, v := range idx.Procurement {
		b.MassDistance.Add(v, bl.b.Distance(a.From, a.To)*bl.suppliers[a.From].UnitWeight)
	}
	b.Transport = b.MassDistance.Clone().Scale(tr.CostRate)
	b.EnvTransport = b.MassDistance.Clone().Scale(tr.EmissionRate)

	for key, v := range idx.Shortage {
		b.Shortage.Add(v, bl.products[key.Item].ShortagePenalty)
	}

	for a, v := range idx.Reuse {
		b.Revenue.Add(v, bl.products[a.Item].ReuseRevenue)
	}
	for a, v := range idx.Recovered {
		b.Revenue.Add(v, bl.products[a.Item].RefurbishRevenue)
	}
	for a, v := range idx.Material {
		b.Revenue.Add(v, bl.materials[a.Item].Revenue)
	}

	return b
}
