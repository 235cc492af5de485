package mempool

import (
	"reflect"

	"github.com/cryptonote-go/txpool/chainhash"
)

// EventType identifies the kind of event an Observer is notified of.
type EventType int

// Constants for the type of a pool event.
const (
	// TransactionDepositedIntoPool fires after a transaction has been
	// fully admitted into the pool.
	TransactionDepositedIntoPool EventType = iota

	// TransactionRemovedFromPool fires after a transaction has been
	// fully removed from the pool, for any reason (block inclusion,
	// expiration, confirmation).
	TransactionRemovedFromPool
)

// eventTypeStrings is a map of event types back to their constant names
// for pretty printing.
var eventTypeStrings = map[EventType]string{
	TransactionDepositedIntoPool: "TransactionDepositedIntoPool",
	TransactionRemovedFromPool:   "TransactionRemovedFromPool",
}

func (t EventType) String() string {
	if s, ok := eventTypeStrings[t]; ok {
		return s
	}
	return "unknown"
}

// Event is a single pool event delivered to observers.
type Event struct {
	Type EventType
	ID   chainhash.Hash
}

// Observer receives pool events. Implementations must not block; the
// pool delivers events synchronously, one at a time, after releasing its
// lock, so an observer is free to call back into the pool.
type Observer interface {
	OnPoolEvent(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// OnPoolEvent implements Observer.
func (f ObserverFunc) OnPoolEvent(e Event) { f(e) }

// Subscribe registers an observer.
func (p *Pool) Subscribe(o Observer) {
	p.observersLock.Lock()
	p.observers = append(p.observers, o)
	p.observersLock.Unlock()
}

// Unsubscribe removes a previously registered observer. It is safe to
// call from within an observer callback, because callback dispatch works
// off a snapshot of the observer list taken under observersLock, not the
// list itself.
func (p *Pool) Unsubscribe(o Observer) {
	p.observersLock.Lock()
	defer p.observersLock.Unlock()
	for i, existing := range p.observers {
		if sameObserver(existing, o) {
			p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
			return
		}
	}
}

// sameObserver reports whether a and b denote the same observer. Function
// observers such as ObserverFunc cannot be compared with ==, so they are
// matched by the function code they wrap: two ObserverFunc values made from
// the same function literal count as the same observer. Values of any other
// non-comparable type never match.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	return va.Type().Comparable() && a == b
}

// queueEvent appends an event to the list pending dispatch. Called only
// while p.mu is held.
func (p *Pool) queueEvent(t EventType, id chainhash.Hash) {
	p.pendingEvents = append(p.pendingEvents, Event{Type: t, ID: id})
}

// drainEvents dispatches and clears every event queued by the most
// recently released locked section. Callers must not hold p.mu — it
// takes the lock itself just long enough to swap out the pending queue,
// then dispatches unlocked, which is what lets observer callbacks
// re-enter the pool's public API without deadlocking.
func (p *Pool) drainEvents() {
	p.mu.Lock()
	events := p.pendingEvents
	p.pendingEvents = nil
	p.mu.Unlock()

	if len(events) == 0 {
		return
	}

	p.observersLock.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.observersLock.RUnlock()

	for _, e := range events {
		for _, o := range observers {
			dispatchSafely(o, e)
		}
	}
}

// dispatchSafely invokes an observer callback, logging and swallowing any
// panic instead of letting a single misbehaving observer take down the
// pool's caller — mirrors §7's "observer callback failures are logged and
// swallowed".
func dispatchSafely(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("mempool: observer callback for %s panicked: %v", e.Type, r)
		}
	}()
	o.OnPoolEvent(e)
}
