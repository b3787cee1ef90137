// Package eval implements the spec-constant evaluator (C10): given a
// parsed ir.Module, it recursively folds OpConstant*/OpSpecConstant*/
// OpSpecConstantOp instructions into concrete values, memoizing results
// and letting callers override a specialization constant's value and
// recompute only what depends on it.
//
// eval owns no SPIR-V decoding of its own; ir.ConstantRecord (populated by
// package spirv while parsing) is its only input.
package eval

import "github.com/gogpu/spirvreflect/ir"

type nodeState uint8

const (
	stateUninitialized nodeState = iota
	statePending
	stateWorking
	stateDone
	stateFailed
	// stateUpdated marks a node whose value depends (directly or
	// transitively) on a spec constant that SetSpecConstant just changed;
	// the next Evaluate call recomputes it instead of trusting the cache.
	stateUpdated
)

// value is either a scalar or an aggregate (vector/array/struct) of
// values, mirroring how CompositeExtract/Insert/VectorShuffle/Select walk
// through struct and vector trees (spec.md §4.10).
type value struct {
	scalar ir.ScalarValue // non-nil for a scalar leaf
	lanes  []value        // non-nil for a vector/array/struct aggregate
}

func (v value) isComposite() bool { return v.lanes != nil }

// node is one evaluator entry, built 1:1 from an ir.ConstantRecord.
type node struct {
	rec   *ir.ConstantRecord
	state nodeState
	value value
	err   error

	// dependents lists the ConstantRecordIDs whose value derives from
	// this node's, used to propagate stateUpdated forward after
	// SetSpecConstant (spec.md §4.10).
	dependents []ir.ConstantRecordID
}
