package params

import "slices"

// Bundle is a validated, immutable parameter set.
type Bundle struct {
	sets Sets

	plants       map[string]Plant
	collections  map[string]Collection
	refurbishers map[string]Refurbish
	recyclers    map[string]Recycling
	landfills    map[string]Landfill
	suppliers    map[string]Supplier
	products     map[string]Product
	materials    map[string]Material

	bom     map[Pair]float64
	demand  map[Pair]float64
	returns map[Pair]float64

	distances  DistanceTable
	transport  Transport
	qualityMix QualityMix
}

// New validates in and returns an immutable Bundle holding a deep copy of it.
// All validation failures are joined; each is a *ConfigError.
func New(in Input) (*Bundle, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	b := &Bundle{
		sets: Sets{
			Plants:       slices.Clone(in.Sets.Plants),
			Customers:    slices.Clone(in.Sets.Customers),
			Collections:  slices.Clone(in.Sets.Collections),
			Refurbishers: slices.Clone(in.Sets.Refurbishers),
			Recyclers:    slices.Clone(in.Sets.Recyclers),
			Landfills:    slices.Clone(in.Sets.Landfills),
			Suppliers:    slices.Clone(in.Sets.Suppliers),
			Products:     slices.Clone(in.Sets.Products),
			Materials:    slices.Clone(in.Sets.Materials),
		},
		plants:       cloneMap(in.Plants),
		collections:  cloneMap(in.Collections),
		refurbishers: cloneMap(in.Refurbishers),
		recyclers:    cloneMap(in.Recyclers),
		landfills:    cloneMap(in.Landfills),
		suppliers:    cloneMap(in.Suppliers),
		products:     cloneMap(in.Products),
		materials:    cloneMap(in.Materials),
		bom:          cloneMap(in.BOM),
		demand:       cloneMap(in.Demand),
		returns:      cloneMap(in.Returns),
		distances:    in.Distances.clone(),
		transport:    in.Transport,
		qualityMix:   in.QualityMix,
	}

	return b, nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	cp := make(map[K]V, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}

// Sets returns a copy of the declared sets.
func (b *Bundle) Sets() Sets {
	s := b.sets
	s.Plants = slices.Clone(s.Plants)
	s.Customers = slices.Clone(s.Customers)
	s.Collections = slices.Clone(s.Collections)
	s.Refurbishers = slices.Clone(s.Refurbishers)
	s.Recyclers = slices.Clone(s.Recyclers)
	s.Landfills = slices.Clone(s.Landfills)
	s.Suppliers = slices.Clone(s.Suppliers)
	s.Products = slices.Clone(s.Products)
	s.Materials = slices.Clone(s.Materials)

	return s
}

func lookup[V any](table string, m map[string]V, id string) (V, error) {
	v, ok := m[id]
	if !ok {
		var zero V
		return zero, configErr(table, id, ErrMissingEntry, "")
	}

	return v, nil
}

// Plant returns the parameters of plant id.
func (b *Bundle) Plant(id string) (Plant, error) { return lookup("plants", b.plants, id) }

// Collection returns the parameters of collection center id.
func (b *Bundle) Collection(id string) (Collection, error) {
	return lookup("collection_centers", b.collections, id)
}

// Refurbisher returns the parameters of refurbish center id.
func (b *Bundle) Refurbisher(id string) (Refurbish, error) {
	return lookup("refurbish_centers", b.refurbishers, id)
}

// Recycler returns the parameters of recycling center id.
func (b *Bundle) Recycler(id string) (Recycling, error) {
	return lookup("recycling_centers", b.recyclers, id)
}

// Landfill returns the parameters of landfill id.
func (b *Bundle) Landfill(id string) (Landfill, error) { return lookup("landfills", b.landfills, id) }

// Supplier returns the parameters of supplier id. Supplier entries are only
// required when the procurement linkage is modelled, so a declared supplier
// may legitimately have none.
func (b *Bundle) Supplier(id string) (Supplier, error) { return lookup("suppliers", b.suppliers, id) }

// Product returns the parameters of product type id.
func (b *Bundle) Product(id string) (Product, error) { return lookup("products", b.products, id) }

// Material returns the parameters of material id.
func (b *Bundle) Material(id string) (Material, error) { return lookup("materials", b.materials, id) }

// BOM returns kg of material per unit of product; 0 when the product does not
// contain the material.
func (b *Bundle) BOM(product, material string) float64 {
	return b.bom[Pair{A: product, B: material}]
}

// Demand returns the demand of customer for product (0 when absent).
func (b *Bundle) Demand(customer, product string) float64 {
	return b.demand[Pair{A: customer, B: product}]
}

// Returns returns the returnable quantity at customer for product (0 when absent).
func (b *Bundle) Returns(customer, product string) float64 {
	return b.returns[Pair{A: customer, B: product}]
}

// Distance returns the distance from a to b, or the declared default.
func (b *Bundle) Distance(from, to string) float64 { return b.distances.Lookup(from, to) }

// Transport returns the transport rates.
func (b *Bundle) Transport() Transport { return b.transport }

// QualityMix returns the quality-mix caps.
func (b *Bundle) QualityMix() QualityMix { return b.qualityMix }
