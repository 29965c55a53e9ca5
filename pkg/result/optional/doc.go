// Package optional implements Optional[T], a presence/absence wrapper with
// the same one-state, no-mutation discipline as Result but without a failure
// payload. Of/OfNullable/Empty construct, IsEmpty/IsNotEmpty query, and
// Map/MapPtr/FlatMap/Filter/Fold transform. ToResult bridges into package
// result when absence needs to become a typed failure.
package optional
