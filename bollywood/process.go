package bollywood

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 256

// process is the goroutine side of a spawned actor.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan envelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{}
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		actor:   props.Produce(),
		mailbox: make(chan envelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *process) send(message interface{}, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}
	select {
	case p.mailbox <- envelope{sender: sender, message: message}:
	default:
		log.Printf("bollywood: %s mailbox full, dropping %T", p.pid, message)
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		p.invoke(Stopped{}, nil)
		p.engine.remove(p.pid)
		close(p.done)
	}()

	p.invoke(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invoke(Stopping{}, nil)
			}
			return
		case env := <-p.mailbox:
			if _, ok := env.message.(Stopping); ok {
				if p.stopped.CompareAndSwap(false, true) {
					p.invoke(env.message, env.sender)
				}
				p.stop()
				return
			}
			if p.stopped.Load() {
				continue
			}
			p.invoke(env.message, env.sender)
		}
	}
}

// invoke runs Receive, recovering from panics so one bad message does not
// take the actor down.
func (p *process) invoke(message interface{}, sender *PID) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("bollywood: %s panicked handling %T: %v\n%s", p.pid, message, r, debug.Stack())
		}
	}()
	p.actor.Receive(&context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: message,
	})
}
