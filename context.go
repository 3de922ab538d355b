package bel

// evalContext records, for every invocation of a built-in operator, whether
// its nested lists were evaluated before the operator ran. Entries are only
// dropped by reset.
type evalContext struct {
	flags []bool
}

// enter registers a new invocation. Only invocations made once the context
// holds more than one entry evaluate their nested lists.
func (c *evalContext) enter() bool {
	evalling := len(c.flags) > 1
	c.flags = append(c.flags, evalling)
	return evalling
}

func (c *evalContext) reset() {
	c.flags = nil
}

func (c *evalContext) snapshot() []bool {
	return append([]bool{}, c.flags...)
}
