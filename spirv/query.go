package spirv

import "github.com/gogpu/spirvreflect/ir"

// This file is C11's read side. The source spec describes enumeration as
// a two-call idiom (null buffer returns a count, a sized buffer fills
// it) so C callers can allocate once; a Go slice already carries its own
// length, so EnumerateX here just returns the slice directly and
// CountMismatch never arises on this side of the API. A lookup miss
// returns ElementNotFound (InvalidEntryPoint for GetEntryPoint).

// EnumerateDescriptorBindings returns every binding in the module, in C9
// sort order.
func EnumerateDescriptorBindings(m *ir.Module) []ir.DescriptorBinding {
	return m.Bindings
}

// EnumerateDescriptorSets returns every set, sorted by set number.
func EnumerateDescriptorSets(m *ir.Module) []ir.DescriptorSet {
	return m.Sets
}

// EnumerateEntryPoints returns every entry point, in declaration order.
func EnumerateEntryPoints(m *ir.Module) []ir.EntryPoint {
	return m.EntryPoints
}

// EnumerateInputVariables returns ep's input interface variables.
func EnumerateInputVariables(ep *ir.EntryPoint) []*ir.InterfaceVariable {
	return ep.InputVariables
}

// EnumerateOutputVariables returns ep's output interface variables.
func EnumerateOutputVariables(ep *ir.EntryPoint) []*ir.InterfaceVariable {
	return ep.OutputVariables
}

// EnumeratePushConstantBlocks returns every push-constant block.
func EnumeratePushConstantBlocks(m *ir.Module) []ir.BlockVariable {
	return m.PushConstants
}

// EnumerateSpecializationConstants returns every SpecId-decorated
// constant.
func EnumerateSpecializationConstants(m *ir.Module) []ir.SpecializationConstant {
	return m.SpecConstants
}

// GetDescriptorBinding looks up the binding at (set, binding).
func GetDescriptorBinding(m *ir.Module, set, binding uint32) (*ir.DescriptorBinding, error) {
	for i := range m.Bindings {
		b := &m.Bindings[i]
		if b.Set == set && b.Binding == binding {
			return b, nil
		}
	}
	return nil, ir.NewError(ir.ElementNotFound, "no descriptor binding at that (set, binding)")
}

// GetDescriptorSet looks up the set with the given set number.
func GetDescriptorSet(m *ir.Module, set uint32) (*ir.DescriptorSet, error) {
	for i := range m.Sets {
		if m.Sets[i].Set == set {
			return &m.Sets[i], nil
		}
	}
	return nil, ir.NewError(ir.ElementNotFound, "no descriptor set with that number")
}

// GetEntryPoint looks up an entry point by name.
func GetEntryPoint(m *ir.Module, name string) (*ir.EntryPoint, error) {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name == name {
			return &m.EntryPoints[i], nil
		}
	}
	return nil, ir.NewError(ir.InvalidEntryPoint, "no entry point with that name")
}

// GetInputVariableByLocation looks up an input variable by its location
// number. Location ir.Invalid ("no explicit location") always misses.
func GetInputVariableByLocation(ep *ir.EntryPoint, location uint32) (*ir.InterfaceVariable, error) {
	return findByLocation(ep.InputVariables, location)
}

// GetOutputVariableByLocation looks up an output variable by its location
// number. Location ir.Invalid ("no explicit location") always misses.
func GetOutputVariableByLocation(ep *ir.EntryPoint, location uint32) (*ir.InterfaceVariable, error) {
	return findByLocation(ep.OutputVariables, location)
}

func findByLocation(vars []*ir.InterfaceVariable, location uint32) (*ir.InterfaceVariable, error) {
	if location == ir.Invalid {
		return nil, ir.NewError(ir.ElementNotFound, "location is the sentinel for \"no explicit location\"")
	}
	for _, v := range vars {
		if v.Location == location {
			return v, nil
		}
	}
	return nil, ir.NewError(ir.ElementNotFound, "no interface variable at that location")
}

// GetInputVariableBySemantic looks up an input variable by its HLSL
// semantic string.
func GetInputVariableBySemantic(ep *ir.EntryPoint, semantic string) (*ir.InterfaceVariable, error) {
	return findBySemantic(ep.InputVariables, semantic)
}

// GetOutputVariableBySemantic looks up an output variable by its HLSL
// semantic string.
func GetOutputVariableBySemantic(ep *ir.EntryPoint, semantic string) (*ir.InterfaceVariable, error) {
	return findBySemantic(ep.OutputVariables, semantic)
}

func findBySemantic(vars []*ir.InterfaceVariable, semantic string) (*ir.InterfaceVariable, error) {
	if semantic == "" {
		return nil, ir.NewError(ir.ElementNotFound, "empty semantic never matches")
	}
	for _, v := range vars {
		if v.Semantic == semantic {
			return v, nil
		}
	}
	return nil, ir.NewError(ir.ElementNotFound, "no interface variable with that semantic")
}

// GetPushConstantBlock looks up a push-constant block by its index in
// declaration order.
func GetPushConstantBlock(m *ir.Module, index int) (*ir.BlockVariable, error) {
	if index < 0 || index >= len(m.PushConstants) {
		return nil, ir.NewError(ir.ElementNotFound, "push constant index out of range")
	}
	return &m.PushConstants[index], nil
}

// GetSpecializationConstant looks up a specialization constant by its
// SpecId.
func GetSpecializationConstant(m *ir.Module, constantID uint32) (*ir.SpecializationConstant, error) {
	for i := range m.SpecConstants {
		if m.SpecConstants[i].ConstantID == constantID {
			return &m.SpecConstants[i], nil
		}
	}
	return nil, ir.NewError(ir.ElementNotFound, "no specialization constant with that id")
}
