package enums

// Index selects one type of a ClassMap, either by position (Pos) or by identity (Type).
type Index interface {
	lookup(cm *ClassMap) (*CaseMap, bool)
}

// Pos selects the n-th type in class map order.
type Pos int

func (p Pos) lookup(cm *ClassMap) (*CaseMap, bool) {
	if p < 0 || int(p) >= len(cm.types) {
		return nil, false
	}
	return cm.byType[cm.types[p]], true
}

func (t Type) lookup(cm *ClassMap) (*CaseMap, bool) {
	if t == "" {
		return nil, false
	}
	m, ok := cm.byType[string(t)]
	return m, ok
}
