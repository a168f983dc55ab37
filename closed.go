package hybridastar

// ClosedSet records the discretized states already expanded during one
// search. Entries are never removed.
type ClosedSet struct {
	keys map[DiscretizationKey]struct{}
}

func NewClosedSet() *ClosedSet {
	return &ClosedSet{keys: make(map[DiscretizationKey]struct{})}
}

func (c *ClosedSet) Contains(key DiscretizationKey) bool {
	_, ok := c.keys[key]
	return ok
}

// Add closes key and reports whether it was not closed before.
func (c *ClosedSet) Add(key DiscretizationKey) bool {
	if _, ok := c.keys[key]; ok {
		return false
	}
	c.keys[key] = struct{}{}
	return true
}

func (c *ClosedSet) Len() int { return len(c.keys) }

// Keys returns a copy of the closed keys in no particular order.
func (c *ClosedSet) Keys() []DiscretizationKey {
	keys := make([]DiscretizationKey, 0, len(c.keys))
	for key := range c.keys {
		keys = append(keys, key)
	}
	return keys
}
