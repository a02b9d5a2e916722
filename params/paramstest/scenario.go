// Package paramstest provides small, fully specified parameter sets for tests
// and examples across the module.
package paramstest

import "github.com/katalvlaran/loopchain/params"

// ScenarioInput returns the reference two-customer network: one plant, two
// customer zones with demand 1000 and returns 800 each, one collection,
// refurbish, recycling and landfill node, one supplier/buyer, a single 11 kg
// product made of five recyclable materials, quality-mix caps 0.20/0.40 and a
// uniform 50 km distance at 0.004 €/kg-km.
//
// Every call returns a fresh Input, so callers may tweak it before params.New.
func ScenarioInput() params.Input {
	const product = "Mono"
	materials := []string{"Glass", "Aluminum", "Silicon", "Plastic", "Copper"}
	customers := []string{"C1", "C2"}

	in := params.Input{
		Sets: params.Sets{
			Plants:       []string{"P1"},
			Customers:    customers,
			Collections:  []string{"O1"},
			Refurbishers: []string{"F1"},
			Recyclers:    []string{"R1"},
			Landfills:    []string{"L1"},
			Suppliers:    []string{"S1"},
			Products:     []string{product},
			Materials:    materials,
		},
		Plants: map[string]params.Plant{
			"P1": {ProductionCost: 140, Emission: 450, Capacity: params.Capacity{Limit: 10000, Unit: params.Count}},
		},
		Collections: map[string]params.Collection{
			"O1": {UnitCost: 8, FixedCost: 15000, Emission: 5, Capacity: params.Capacity{Limit: 100000, Unit: params.Mass}},
		},
		Refurbishers: map[string]params.Refurbish{
			"F1": {UnitCost: 25, FixedCost: 25000, Emission: 30, Capacity: params.Capacity{Limit: 50000, Unit: params.Mass}, Yield: 0.90},
		},
		Recyclers: map[string]params.Recycling{
			"R1": {UnitCost: 0.60, FixedCost: 30000, Emission: 1.5, Capacity: params.Capacity{Limit: 50000, Unit: params.Mass}, Efficiency: 0.95},
		},
		Landfills: map[string]params.Landfill{
			"L1": {DisposalCost: 0.15, Emission: 0.5},
		},
		Suppliers: map[string]params.Supplier{
			"S1": {BOMRatio: 1, MaterialCost: 20, UnitWeight: 2, Emission: 15},
		},
		Products: map[string]params.Product{
			product: {Weight: 11, ShortagePenalty: 800, ReuseRevenue: 90, RefurbishRevenue: 110},
		},
		Materials: map[string]params.Material{
			"Glass":    {Revenue: 0.08},
			"Aluminum": {Revenue: 1.80},
			"Silicon":  {Revenue: 12.0},
			"Plastic":  {Revenue: 0.15},
			"Copper":   {Revenue: 6.50},
		},
		BOM: map[params.Pair]float64{
			{A: product, B: "Glass"}:    8.0,
			{A: product, B: "Aluminum"}: 1.5,
			{A: product, B: "Silicon"}:  0.5,
			{A: product, B: "Plastic"}:  0.8,
			{A: product, B: "Copper"}:   0.2,
		},
		Demand:     map[params.Pair]float64{},
		Returns:    map[params.Pair]float64{},
		Distances:  params.NewDistanceTable(50, nil, false),
		Transport:  params.Transport{CostRate: 0.004, EmissionRate: 0.00006},
		QualityMix: params.QualityMix{ReuseCap: 0.20, RefurbishCap: 0.40},
	}
	for _, c := range customers {
		in.Demand[params.Pair{A: c, B: product}] = 1000
		in.Returns[params.Pair{A: c, B: product}] = 800
	}

	return in
}

// Scenario returns the validated bundle of ScenarioInput. It panics on a
// validation error, which would be a bug in this package.
func Scenario() *params.Bundle {
	b, err := params.New(ScenarioInput())
	if err != nil {
		panic(err)
	}

	return b
}

// RegionalInput returns a multi-facility network built on the same product
// and materials as ScenarioInput: two plants, four customer zones with uneven
// demand and returns, two collection, refurbish, recycling and landfill nodes
// each, and two suppliers. Facilities differ in cost, emission and distance,
// so the open-indicators and the routing both matter.
func RegionalInput() params.Input {
	in := ScenarioInput()
	const product = "Mono"
	customers := []string{"C1", "C2", "C3", "C4"}

	in.Sets = params.Sets{
		Plants:       []string{"P1", "P2"},
		Customers:    customers,
		Collections:  []string{"O1", "O2"},
		Refurbishers: []string{"F1", "F2"},
		Recyclers:    []string{"R1", "R2"},
		Landfills:    []string{"L1", "L2"},
		Suppliers:    []string{"S1", "S2"},
		Products:     []string{product},
		Materials:    in.Sets.Materials,
	}
	in.Plants = map[string]params.Plant{
		"P1": {ProductionCost: 140, Emission: 450, Capacity: params.Capacity{Limit: 3000, Unit: params.Count}},
		"P2": {ProductionCost: 155, Emission: 380, Capacity: params.Capacity{Limit: 3000, Unit: params.Count}},
	}
	in.Collections = map[string]params.Collection{
		"O1": {UnitCost: 8, FixedCost: 15000, Emission: 5, Capacity: params.Capacity{Limit: 30000, Unit: params.Mass}},
		"O2": {UnitCost: 6, FixedCost: 22000, Emission: 7, Capacity: params.Capacity{Limit: 30000, Unit: params.Mass}},
	}
	in.Refurbishers = map[string]params.Refurbish{
		"F1": {UnitCost: 25, FixedCost: 25000, Emission: 30, Capacity: params.Capacity{Limit: 15000, Unit: params.Mass}, Yield: 0.90},
		"F2": {UnitCost: 30, FixedCost: 18000, Emission: 22, Capacity: params.Capacity{Limit: 15000, Unit: params.Mass}, Yield: 0.85},
	}
	in.Recyclers = map[string]params.Recycling{
		"R1": {UnitCost: 0.60, FixedCost: 30000, Emission: 1.5, Capacity: params.Capacity{Limit: 20000, Unit: params.Mass}, Efficiency: 0.95},
		"R2": {UnitCost: 0.45, FixedCost: 40000, Emission: 2.0, Capacity: params.Capacity{Limit: 20000, Unit: params.Mass}, Efficiency: 0.90},
	}
	in.Landfills = map[string]params.Landfill{
		"L1": {DisposalCost: 0.15, Emission: 0.5},
		"L2": {DisposalCost: 0.10, Emission: 0.8},
	}
	in.Suppliers = map[string]params.Supplier{
		"S1": {BOMRatio: 1, MaterialCost: 20, UnitWeight: 2, Emission: 15},
		"S2": {BOMRatio: 1, MaterialCost: 18, UnitWeight: 2, Emission: 19},
	}

	in.Demand = map[params.Pair]float64{}
	in.Returns = map[params.Pair]float64{}
	for i, c := range customers {
		in.Demand[params.Pair{A: c, B: product}] = float64(600 + 200*i)
		in.Returns[params.Pair{A: c, B: product}] = float64(400 + 150*i)
	}

	// West (P1, O1, F1, R1, L1, S1, C1, C2) and east (the rest) sit 40 km
	// apart internally and 120 km across.
	west := map[string]bool{"P1": true, "O1": true, "F1": true, "R1": true, "L1": true, "S1": true, "C1": true, "C2": true}
	nodes := []string{"P1", "P2", "C1", "C2", "C3", "C4", "O1", "O2", "F1", "F2", "R1", "R2", "L1", "L2", "S1", "S2"}
	pairs := make(map[params.Pair]float64)
	for _, a := range nodes {
		for _, b := range nodes {
			if a != b && west[a] == west[b] {
				pairs[params.Pair{A: a, B: b}] = 40
			}
		}
	}
	in.Distances = params.NewDistanceTable(120, pairs, false)

	return in
}

// Regional returns the validated bundle of RegionalInput, panicking like
// Scenario.
func Regional() *params.Bundle {
	b, err := params.New(RegionalInput())
	if err != nil {
		panic(err)
	}

	return b
}
