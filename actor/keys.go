package actor

// Key is the semantic key set the simulation understands. The windowing
// layer maps raw key codes onto it before events reach the player; Escape is
// handled at that boundary and never arrives here.
type Key int32

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

// otherBase offsets raw key codes so they never alias the named keys.
const otherBase Key = 0x10000

// OtherKey wraps a raw key code the simulation has no named meaning for.
// Distinct codes stay distinct so held-key tracking can match releases.
func OtherKey(code int32) Key {
	return otherBase + Key(code)
}
