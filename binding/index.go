package binding

// MapKeyGroup is one group of map contributions sharing a grouping key.
//
// The grouping key is either the unwrapped member value of the bindings'
// map-key annotations (when their policy unwraps) or a whole Annotation
// compared structurally. More than one binding in a group means two
// declarations contributed under the same synthesized map key — a conflict
// the caller is responsible for reporting.
type MapKeyGroup struct {
	// Key is the grouping key: a member value, or an Annotation.
	Key any

	// Bindings are the group members, in input order.
	Bindings []*ContributionBinding
}

// AnnotationTypeGroup is one group of map contributions whose map-key
// annotations share a declared type, member values ignored.
type AnnotationTypeGroup struct {
	// Type is the annotations' declared type.
	Type TypeRef

	// Bindings are the group members, in input order.
	Bindings []*ContributionBinding
}

// IndexMapBindingsByMapKey groups map contributions by the value of their
// map-key annotation.
//
// For each binding the grouping key is the annotation's designated member
// value when the annotation's policy unwraps, and the whole annotation
// otherwise; either way keys are compared structurally. Groups appear in
// first-seen key order. A binding that is not a map contribution fails the
// whole indexing with a MissingMapKeyError.
func IndexMapBindingsByMapKey(bindings []*ContributionBinding) ([]MapKeyGroup, error) {
	groups := make([]MapKeyGroup, 0, len(bindings))
	for _, b := range bindings {
		ann, err := b.MapKey()
		if err != nil {
			return nil, err
		}
		var key any = ann
		if ann.UnwrapsValue() {
			key = ann.Value()
		}
		idx := -1
		for i := range groups {
			if groupingKeysEqual(groups[i].Key, key) {
				idx = i
				break
			}
		}
		if idx < 0 {
			groups = append(groups, MapKeyGroup{Key: key})
			idx = len(groups) - 1
		}
		groups[idx].Bindings = append(groups[idx].Bindings, b)
	}
	return groups, nil
}

// IndexMapBindingsByAnnotationType groups map contributions by the declared
// type of their map-key annotation, under structural type equivalence,
// ignoring member values. Groups appear in first-seen type order. A binding
// that is not a map contribution fails the whole indexing with a
// MissingMapKeyError.
func IndexMapBindingsByAnnotationType(bindings []*ContributionBinding) ([]AnnotationTypeGroup, error) {
	groups := make([]AnnotationTypeGroup, 0, len(bindings))
	for _, b := range bindings {
		ann, err := b.MapKey()
		if err != nil {
			return nil, err
		}
		annType := ann.Type()
		idx := -1
		for i := range groups {
			if typeRefsEqual(groups[i].Type, annType) {
				idx = i
				break
			}
		}
		if idx < 0 {
			groups = append(groups, AnnotationTypeGroup{Type: annType})
			idx = len(groups) - 1
		}
		groups[idx].Bindings = append(groups[idx].Bindings, b)
	}
	return groups, nil
}

// groupingKeysEqual compares two grouping keys. Whole annotations compare
// as annotations; an annotation never equals a bare member value, even one
// it would unwrap to.
func groupingKeysEqual(a, b any) bool {
	aAnn, aIsAnn := a.(Annotation)
	bAnn, bIsAnn := b.(Annotation)
	if aIsAnn || bIsAnn {
		if aIsAnn && bIsAnn {
			return annotationsEqual(aAnn, bAnn)
		}
		return false
	}
	return structurallyEqual(a, b)
}
