package bollywood

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Engine spawns actors and routes messages to them.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor and returns its PID, or nil once the engine is
// shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Printf("bollywood: engine stopping, refusing to spawn")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

// Send delivers message to pid without blocking. Unknown PIDs and messages
// sent during shutdown are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.send(message, sender)
	}
}

// Stop asks the actor to stop. It receives Stopping, then Stopped.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.stop()
	}
}

// Wait blocks until the actor has exited or the timeout elapses. It reports
// whether the actor is gone.
func (e *Engine) Wait(pid *PID, timeout time.Duration) bool {
	proc, ok := e.lookup(pid)
	if !ok {
		return true
	}
	select {
	case <-proc.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	for _, proc := range procs {
		proc.stop()
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline:
			log.Printf("bollywood: shutdown timed out with %d actors running", e.Count())
			return
		}
	}
}

// Count returns the number of live actors.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	proc, ok := e.actors[pid.ID]
	return proc, ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}
