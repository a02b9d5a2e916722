package params

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document mirrors the YAML parameter file. Unknown keys are rejected.
type document struct {
	Sets struct {
		Plants       []string `yaml:"plants"`
		Customers    []string `yaml:"customers"`
		Collections  []string `yaml:"collection_centers"`
		Refurbishers []string `yaml:"refurbish_centers"`
		Recyclers    []string `yaml:"recycling_centers"`
		Landfills    []string `yaml:"landfills"`
		Suppliers    []string `yaml:"suppliers"`
		Products     []string `yaml:"products"`
		Materials    []string `yaml:"materials"`
	} `yaml:"sets"`

	Plants map[string]struct {
		ProductionCost float64     `yaml:"production_cost"`
		Emission       float64     `yaml:"emission"`
		Capacity       capacityDoc `yaml:"capacity"`
	} `yaml:"plants"`

	Collections map[string]struct {
		UnitCost  float64     `yaml:"unit_cost"`
		FixedCost float64     `yaml:"fixed_cost"`
		Emission  float64     `yaml:"emission"`
		Capacity  capacityDoc `yaml:"capacity"`
	} `yaml:"collection_centers"`

	Refurbishers map[string]struct {
		UnitCost  float64     `yaml:"unit_cost"`
		FixedCost float64     `yaml:"fixed_cost"`
		Emission  float64     `yaml:"emission"`
		Capacity  capacityDoc `yaml:"capacity"`
		Yield     float64     `yaml:"yield"`
	} `yaml:"refurbish_centers"`

	Recyclers map[string]struct {
		UnitCost   float64     `yaml:"unit_cost"`
		FixedCost  float64     `yaml:"fixed_cost"`
		Emission   float64     `yaml:"emission"`
		Capacity   capacityDoc `yaml:"capacity"`
		Efficiency float64     `yaml:"efficiency"`
	} `yaml:"recycling_centers"`

	Landfills map[string]Landfill `yaml:"landfills"`
	Suppliers map[string]Supplier `yaml:"suppliers"`
	Products  map[string]Product  `yaml:"products"`
	Materials map[string]Material `yaml:"materials"`

	BOM []struct {
		Product  string  `yaml:"product"`
		Material string  `yaml:"material"`
		Kg       float64 `yaml:"kg"`
	} `yaml:"bom"`

	Demand []struct {
		Customer string  `yaml:"customer"`
		Product  string  `yaml:"product"`
		Demand   float64 `yaml:"demand"`
		Returns  float64 `yaml:"returns"`
	} `yaml:"demand"`

	Distance struct {
		Default   *float64 `yaml:"default"`
		Symmetric bool     `yaml:"symmetric"`
		Pairs     []struct {
			From string  `yaml:"from"`
			To   string  `yaml:"to"`
			Km   float64 `yaml:"km"`
		} `yaml:"pairs"`
	} `yaml:"distance"`

	Transport struct {
		CostRate     float64 `yaml:"cost_rate"`
		EmissionRate float64 `yaml:"emission_rate"`
	} `yaml:"transport"`

	QualityMix struct {
		ReuseCap     float64 `yaml:"reuse_cap"`
		RefurbishCap float64 `yaml:"refurbish_cap"`
	} `yaml:"quality_mix"`
}

type capacityDoc struct {
	Limit float64 `yaml:"limit"`
	Unit  string  `yaml:"unit"`
}

// Load reads and validates the YAML parameter file at path.
func Load(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("params: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one YAML parameter document from r and validates it.
func Decode(r io.Reader) (*Bundle, error) {
	in, err := DecodeInput(r)
	if err != nil {
		return nil, err
	}

	return New(in)
}

// DecodeInput reads one YAML parameter document into an unvalidated Input.
func DecodeInput(r io.Reader) (Input, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Input{}, fmt.Errorf("params: decode: %w", err)
	}

	return doc.input()
}

func (d *document) input() (Input, error) {
	var errs []error
	unit := func(table, id string, c capacityDoc) Capacity {
		u, err := ParseUnit(c.Unit)
		if err != nil {
			errs = append(errs, configErr(table, id, ErrInvalidValue, "capacity unit "+fmt.Sprintf("%q", c.Unit)))
		}

		return Capacity{Limit: c.Limit, Unit: u}
	}

	in := Input{
		Sets: Sets{
			Plants:       d.Sets.Plants,
			Customers:    d.Sets.Customers,
			Collections:  d.Sets.Collections,
			Refurbishers: d.Sets.Refurbishers,
			Recyclers:    d.Sets.Recyclers,
			Landfills:    d.Sets.Landfills,
			Suppliers:    d.Sets.Suppliers,
			Products:     d.Sets.Products,
			Materials:    d.Sets.Materials,
		},
		Plants:       make(map[string]Plant, len(d.Plants)),
		Collections:  make(map[string]Collection, len(d.Collections)),
		Refurbishers: make(map[string]Refurbish, len(d.Refurbishers)),
		Recyclers:    make(map[string]Recycling, len(d.Recyclers)),
		Landfills:    d.Landfills,
		Suppliers:    d.Suppliers,
		Products:     d.Products,
		Materials:    d.Materials,
		BOM:          make(map[Pair]float64, len(d.BOM)),
		Demand:       make(map[Pair]float64, len(d.Demand)),
		Returns:      make(map[Pair]float64, len(d.Demand)),
		Transport:    Transport{CostRate: d.Transport.CostRate, EmissionRate: d.Transport.EmissionRate},
		QualityMix:   QualityMix{ReuseCap: d.QualityMix.ReuseCap, RefurbishCap: d.QualityMix.RefurbishCap},
	}

	for id, p := range d.Plants {
		in.Plants[id] = Plant{ProductionCost: p.ProductionCost, Emission: p.Emission, Capacity: unit("plants", id, p.Capacity)}
	}
	for id, c := range d.Collections {
		in.Collections[id] = Collection{
			UnitCost: c.UnitCost, FixedCost: c.FixedCost, Emission: c.Emission,
			Capacity: unit("collection_centers", id, c.Capacity),
		}
	}
	for id, f := range d.Refurbishers {
		in.Refurbishers[id] = Refurbish{
			UnitCost: f.UnitCost, FixedCost: f.FixedCost, Emission: f.Emission,
			Capacity: unit("refurbish_centers", id, f.Capacity), Yield: f.Yield,
		}
	}
	for id, r := range d.Recyclers {
		in.Recyclers[id] = Recycling{
			UnitCost: r.UnitCost, FixedCost: r.FixedCost, Emission: r.Emission,
			Capacity: unit("recycling_centers", id, r.Capacity), Efficiency: r.Efficiency,
		}
	}

	for _, e := range d.BOM {
		in.BOM[Pair{A: e.Product, B: e.Material}] = e.Kg
	}
	for _, e := range d.Demand {
		k := Pair{A: e.Customer, B: e.Product}
		if _, dup := in.Demand[k]; dup {
			errs = append(errs, configErr("demand", e.Customer+"/"+e.Product, ErrDuplicateID, ""))
			continue
		}
		in.Demand[k] = e.Demand
		in.Returns[k] = e.Returns
	}

	pairs := make(map[Pair]float64, len(d.Distance.Pairs))
	for _, e := range d.Distance.Pairs {
		pairs[Pair{A: e.From, B: e.To}] = e.Km
	}
	if d.Distance.Default != nil {
		in.Distances = NewDistanceTable(*d.Distance.Default, pairs, d.Distance.Symmetric)
	} else {
		errs = append(errs, configErr("distance", "default", ErrNoDefaultDistance, ""))
	}

	return in, errors.Join(errs...)
}
