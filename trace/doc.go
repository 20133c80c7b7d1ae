/*
Package trace turns a selection into a normalized sequence of geo points.

# Fetch Operations

Both reads go against the location_point table and return points ordered by
created_at ascending (a query contract, not a client-side sort):

	points, err := store.FetchByUser(ctx, userID)
	points, err := store.FetchByFilter(ctx, criteria)

Supplied filter criteria are ANDed with exact match; omitted criteria are
unconstrained. Every read carries a fixed timeout so a slow store surfaces
as a failed query instead of an unbounded loading state.

# Normalization

Points with out-of-range coordinates (latitude outside [-90, 90], longitude
outside [-180, 180]) are rejected before they can reach the renderer.
An empty result is a valid empty trace, not an error.

# Identity

The user directory and display names:

	options, err := store.ListUsers(ctx)
	name := store.DisplayName(ctx, userID)

Users without a profile entry get the deterministic fallback
"User <first 8 chars>...".
*/
package trace
