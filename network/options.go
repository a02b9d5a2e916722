package network

import (
	"strings"

	"github.com/go-logr/logr"
)

// Features is the capability-flag set selecting a model variant.
type Features uint8

const (
	// SupplierLinkage adds supplier→plant procurement Z_sp tied to production
	// by each supplier's BOM ratio. Supplier entries become required.
	SupplierLinkage Features = 1 << iota
	// ArcDisaggregation tracks collection outflow per originating customer.
	ArcDisaggregation
	// RefurbishWaste routes the (1−yield) refurbish residual to landfills.
	RefurbishWaste
	// ReturnsEquality forces every declared return to be collected.
	ReturnsEquality
)

// Has reports whether every flag of x is set in f.
func (f Features) Has(x Features) bool { return f&x == x }

func (f Features) String() string {
	if f == 0 {
		return "base"
	}
	var parts []string
	for _, n := range []struct {
		flag Features
		name string
	}{
		{SupplierLinkage, "supplier-linkage"},
		{ArcDisaggregation, "arc-disaggregation"},
		{RefurbishWaste, "refurbish-waste"},
		{ReturnsEquality, "returns-equality"},
	} {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "+")
}

// ParseFeature maps a flag name as printed by Features.String to its value.
func ParseFeature(name string) (Features, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "supplier-linkage", "supplier_linkage":
		return SupplierLinkage, true
	case "arc-disaggregation", "arc_disaggregation":
		return ArcDisaggregation, true
	case "refurbish-waste", "refurbish_waste":
		return RefurbishWaste, true
	case "returns-equality", "returns_equality":
		return ReturnsEquality, true
	default:
		return 0, false
	}
}

type options struct {
	features Features
	logger   logr.Logger
}

func defaultOptions() options {
	return options{logger: logr.Discard()}
}

// Option configures Build.
type Option func(*options)

// WithSupplierLinkage enables the supplier→plant procurement linkage.
func WithSupplierLinkage() Option { return func(o *options) { o.features |= SupplierLinkage } }

// WithArcDisaggregation enables per-customer batch routing out of collection.
func WithArcDisaggregation() Option { return func(o *options) { o.features |= ArcDisaggregation } }

// WithRefurbishWaste enables the explicit refurbish→landfill residual arc.
func WithRefurbishWaste() Option { return func(o *options) { o.features |= RefurbishWaste } }

// WithReturnsEquality turns the returns cap into an equality.
func WithReturnsEquality() Option { return func(o *options) { o.features |= ReturnsEquality } }

// WithFeatures sets every flag of f.
func WithFeatures(f Features) Option { return func(o *options) { o.features |= f } }

// WithLogger sets the build logger. Counts per constraint family are logged
// at logging.DEBUG.
func WithLogger(l logr.Logger) Option { return func(o *options) { o.logger = l } }
