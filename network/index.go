package network

import "github.com/katalvlaran/loopchain/model"

// Key addresses a node-level variable, e.g. production (plant, product) or
// shortage (customer, product).
type Key struct {
	Node string
	Item string
}

// Arc addresses a flow variable. Item is the product, the material for
// recovered-material arcs, and empty for procurement arcs.
type Arc struct {
	From string
	To   string
	Item string
}

// Batch addresses a disaggregated collection outflow: product returned by
// Origin, sorted at collection center Hub and sent to Dest.
type Batch struct {
	Origin  string
	Hub     string
	Dest    string
	Product string
}

// Index maps arc keys to model variables. Maps of disabled variants are empty.
type Index struct {
	Production  map[Key]model.Var // X_pk
	Shipment    map[Arc]model.Var // X_pck
	Collected   map[Arc]model.Var // Y_cok
	Reuse       map[Arc]model.Var // Y_ock
	Refurbish   map[Arc]model.Var // Y_ofk
	Recycle     map[Arc]model.Var // Y_ork
	Landfill    map[Arc]model.Var // Y_olk
	Recovered   map[Arc]model.Var // Y_fpk
	RefurbWaste map[Arc]model.Var // Y_flk
	Material    map[Arc]model.Var // Z_rsm, kg
	Procurement map[Arc]model.Var // Z_sp
	Shortage    map[Key]model.Var // S_ck
	Open        map[string]model.Var

	BatchReuse     map[Batch]model.Var
	BatchRefurbish map[Batch]model.Var
	BatchRecycle   map[Batch]model.Var
	BatchLandfill  map[Batch]model.Var
}

func newIndex() Index {
	return Index{
		Production:     make(map[Key]model.Var),
		Shipment:       make(map[Arc]model.Var),
		Collected:      make(map[Arc]model.Var),
		Reuse:          make(map[Arc]model.Var),
		Refurbish:      make(map[Arc]model.Var),
		Recycle:        make(map[Arc]model.Var),
		Landfill:       make(map[Arc]model.Var),
		Recovered:      make(map[Arc]model.Var),
		RefurbWaste:    make(map[Arc]model.Var),
		Material:       make(map[Arc]model.Var),
		Procurement:    make(map[Arc]model.Var),
		Shortage:       make(map[Key]model.Var),
		Open:           make(map[string]model.Var),
		BatchReuse:     make(map[Batch]model.Var),
		BatchRefurbish: make(map[Batch]model.Var),
		BatchRecycle:   make(map[Batch]model.Var),
		BatchLandfill:  make(map[Batch]model.Var),
	}
}
