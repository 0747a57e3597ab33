package bollywood

// Context is handed to an actor for each message it processes.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }

// Started is delivered once, before any user message.
type Started struct{}

// Stopping is delivered when the actor is asked to stop. No user messages
// follow it.
type Stopping struct{}

// Stopped is the last message an actor receives.
type Stopped struct{}

type envelope struct {
	sender  *PID
	message interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
