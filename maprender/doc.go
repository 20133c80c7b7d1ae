/*
Package maprender owns the lifecycle of the map drawing surface.

# Renderer

The renderer is a small state machine (empty → routed) over a Surface:

	r := maprender.New()
	r.Attach(surface) // once per surface lifetime
	r.Update(points)  // wholesale replace; empty trace clears
	r.Ready()         // flush the latest queued update
	r.Detach()

Update tears down the previous trace's artifacts before attaching the new
one, in strict order: markers, then layer, then source on removal; source,
then layer, then markers, then viewport framing on attach. The surface
never holds more than one route line and its marker set.

Updates before Ready are queued latest-wins: superseded intermediate calls
are dropped, and exactly one update is applied when readiness is signaled.

# Document

Document implements Surface as the serializable map document served to the
browser, which applies it to the actual map SDK. It rejects misordered
source/layer operations the way the SDK would, so ordering bugs fail in
tests rather than in the browser console.
*/
package maprender
