package workers

import (
	"log"

	"gobridgerouter/router"
	"gobridgerouter/types"
)

// Worker_EventLog subscribes a logging observer to the router's event
// bus so every committed state transition shows up in the service log.
func Worker_EventLog(rt *router.Router) {
	rt.Events().Subscribe(router.ObserverFunc(func(ev types.Event) {
		switch ev.Type {
		case types.EventTransferInitiated:
			log.Printf("event %s: transfer %s, %s of %s to chain %d for %s", ev.Type, ev.TransferId, ev.Amount, ev.Token, ev.Chain, ev.Recipient)
		case types.EventRouteAdded, types.EventRouteToggled:
			log.Printf("event %s: chain %d route %d endpoint %s active=%v", ev.Type, ev.Chain, ev.RouteIndex, ev.Endpoint, ev.Active)
		default:
			log.Printf("event %s: %+v", ev.Type, ev)
		}
	}))
}
