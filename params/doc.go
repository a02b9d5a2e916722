// Package params is the parameter repository of a closed-loop supply-chain
// network: node sets, per-facility cost/emission/capacity tables, product and
// material data, bill-of-materials, demand/returns and distances.
//
// A Bundle is built once from an Input (or decoded from YAML) and validated
// in full before it is handed to the model builder:
//
//   - every identifier referenced by any table is declared in its set,
//   - every declared facility, product and material has its table entry,
//   - capacities, demands, returns, costs and emissions are ≥ 0 and finite,
//   - yields, recycling efficiencies and quality-mix caps lie in [0,1],
//   - the distance table carries an explicitly declared default.
//
// Lookups follow a "declared or error" policy: a missing entry returns a
// *ConfigError (errors.Is(err, ErrConfiguration)) instead of a zero value.
// Only Demand, Returns and BOM are sparse (absent ⇒ 0), and only Distance has
// a numeric fallback, which is the declared default.
//
// A Bundle is immutable after New returns; accessors hand out copies.
package params
