package kernels

import (
	"errors"
	"fmt"
)

// Variant identifies one GEMV kernel strategy.
type Variant int

const (
	// Scalar is the nested-loop reference over the Row-Padded layout.
	Scalar Variant = iota
	// DotProd processes one Row-Padded row at a time in 16-byte chunks.
	DotProd
	// DotProd4 services four rows per input pass over the Four-Row-Blocked
	// layout.
	DotProd4
	// DotProd4Interleaved reads the Four-Row-Interleaved layout with
	// sequential 64-byte loads.
	DotProd4Interleaved
)

var variantNames = map[Variant]string{
	Scalar:              "scalar",
	DotProd:             "dotprod",
	DotProd4:            "dotprod4",
	DotProd4Interleaved: "dotprod4i",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a kernel name from the command line to its Variant.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown kernel %q (valid: scalar, dotprod, dotprod4, dotprod4i)", name)
}

// RequiresDotProd reports whether the variant needs the hardware dot-product
// capability. Only Scalar runs everywhere.
func (v Variant) RequiresDotProd() bool {
	return v != Scalar
}

// LayoutBytes is the size in bytes of the packed layout the variant streams
// through per iteration.
func (v Variant) LayoutBytes(s Shape) int {
	switch v {
	case Scalar, DotProd:
		return s.RowPaddedSize()
	default:
		return s.BlockedSize()
	}
}

// ErrDotProdUnsupported is returned by New when a non-scalar variant is
// requested without hardware support.
var ErrDotProdUnsupported = errors.New("dot-product capability not available")

// Kernel executes one Variant at a fixed prefetch distance.
type Kernel struct {
	variant  Variant
	prefetch int
}

// New constructs the executor for variant. The capability check happens
// here, once: a non-scalar variant without hardware support is an error,
// never a silent fall back to Scalar.
func New(variant Variant, prefetch int) (*Kernel, error) {
	if _, ok := variantNames[variant]; !ok {
		return nil, fmt.Errorf("unknown kernel variant %d", int(variant))
	}
	if variant.RequiresDotProd() && !HasDotProd() {
		return nil, fmt.Errorf("kernel %s: %w", variant, ErrDotProdUnsupported)
	}
	return &Kernel{variant: variant, prefetch: prefetch}, nil
}

// Variant returns the strategy this kernel was built for.
func (k *Kernel) Variant() Variant {
	return k.variant
}

// Compute runs one full GEMV over the layout the variant consumes, writing
// all n outputs into y.
func (k *Kernel) Compute(y []int32, p *Packed, x []int8) {
	switch k.variant {
	case Scalar:
		GEMVScalar(y, p.RowPadded, x, p.Shape)
	case DotProd:
		GEMVDotProd(y, p.RowPadded, x, p.Shape, k.prefetch)
	case DotProd4:
		GEMVDotProd4(y, p.Blocked, x, p.Shape, k.prefetch)
	case DotProd4Interleaved:
		GEMVDotProd4Interleaved(y, p.Interleaved, x, p.Shape, k.prefetch)
	}
}
