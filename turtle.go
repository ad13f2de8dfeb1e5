package lindraw

// TurtleState is the full state of the turtle. It only holds values, so a
// plain assignment is a complete snapshot.
type TurtleState struct {
	Position   Vector2D
	Heading    Vector2D // unit length
	Color      Color
	StepLength float64
}

// Context is the stack of turtle states of one draw. The top of the stack is
// the current state; it is never empty.
type Context struct {
	states []TurtleState
}

func NewContext(initial TurtleState) *Context {
	states := make([]TurtleState, 1, 16)
	states[0] = initial
	return &Context{states: states}
}

// Current returns the top state. The pointer is only valid until the next
// Push or Pop.
func (c *Context) Current() *TurtleState {
	return &c.states[len(c.states)-1]
}

// Push duplicates the current state on top of the stack
func (c *Context) Push() {
	c.states = append(c.states, c.states[len(c.states)-1])
}

func (c *Context) PushState(state TurtleState) {
	c.states = append(c.states, state)
}

// Pop removes the current state, exposing the one beneath.
// Popping the last remaining state fails with ErrUnbalancedPop.
func (c *Context) Pop() error {
	if len(c.states) <= 1 {
		return ErrUnbalancedPop
	}
	c.states = c.states[:len(c.states)-1]
	return nil
}

func (c *Context) Depth() int {
	return len(c.states)
}
