/*
Package dashboard contains the selection controller behind the trace view.

# View

A View owns the current selection (a user, or a demographic filter set),
the loading flag, and the renderer for its map document:

	view.SelectUser("abc123")
	view.SelectFilter(models.FilterCriteria{Gender: "Female"})
	view.SetMode(models.ModeFilter)
	snap := view.Snapshot()

Selection changes dispatch their store query asynchronously. Every dispatch
bumps a generation counter and the query carries its token along; at
resolution the result is applied only if the token still matches. A second
selection made while the first is in flight therefore wins regardless of
completion order, and the superseded result - data or error - is discarded
silently without flipping the loading flag.

SetMode and empty selections (no user chosen, filter with no criteria)
clear the rendered trace immediately and issue no query.

# Registry

One View per dashboard page load, keyed by a random ID carried in the page.
Views untouched for an hour are pruned on the next Create.
*/
package dashboard
