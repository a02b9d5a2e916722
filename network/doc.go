// Package network turns a validated parameter bundle into the closed-loop
// supply-chain model: flow variables on every arc of the fixed echelon
// taxonomy, the conservation/yield/capacity constraints that couple them, and
// the two live objectives (Cost and Environmental).
//
// Topology (forward and reverse legs):
//
//	S ──Z_sp──▶ P ──X_pck──▶ C ──Y_cok──▶ O ──Y_ock──▶ C        (reuse)
//	            ▲                         ├──Y_ofk──▶ F ──Y_fpk──▶ P (recovered)
//	            │                         │           └──Y_flk──▶ L (waste, optional)
//	            │                         ├──Y_ork──▶ R ──Z_rsm──▶ S (material mass)
//	            │                         └──Y_olk──▶ L
//	            └── X_pk (production)
//
// Constraint families, all emitted by Build:
//
//	demand        Σ_p X_pck + Σ_o Y_ock + S_ck = DEM(c,k)
//	returns       Σ_o Y_cok ≤ RET(c,k)   (= with WithReturnsEquality)
//	collection    Σ_c Y_cok = Σ reuse + refurbish + recycle + landfill, per (o,k)
//	quality       reuse ≤ ReuseCap·inflow, refurbish ≤ RefurbCap·inflow, per (o,k)
//	plant         X_pk + Σ_f Y_fpk = Σ_c X_pck, per (p,k)
//	yield         Σ_p Y_fpk = α_f·Σ_o Y_ofk, per (f,k)
//	waste         Σ_l Y_flk = (1−α_f)·Σ_o Y_ofk, per (f,k)   (WithRefurbishWaste)
//	material      Σ_s Z_rsm = β_r·Σ_o Σ_k γ(k,m)·Y_ork, per (r,m)
//	capacity      gated by W for O/F/R, ungated for plants; ω-weighted for mass units
//	linkage       Z_sp = ratio_s·Σ_k X_pk, per (s,p)     (WithSupplierLinkage)
//
// WithArcDisaggregation additionally tracks every collection outflow per
// originating customer batch with per-batch conservation and quality rows;
// the aggregate arc variables are then tied to sums of batch variables.
//
// Rows whose expression is empty and trivially satisfied (for example the
// returns cap of a network without collection centers) are not emitted.
//
// Every parameter lookup follows the bundle's "declared or error" policy, so a
// missing entry aborts Build with a *params.ConfigError.
package network
