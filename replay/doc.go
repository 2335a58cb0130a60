// Package replay renders search traces: as plain text for logs and tests, and
// as a paced animation on a terminal screen.
//
// Rendering:
//
//	Frame turns a grid, a trace prefix and an optional path into a row-major
//	cell buffer. Text flattens the full trace into ASCII:
//
//	  '#' solid   '2'..'9' weighted   '.' empty
//	  'o' expanded   '+' discovered, not yet expanded   '*' path
//
//	Nodes grown from the goal side of a bidirectional search share the 'o'
//	and '+' runes but use the Backward styles on screen.
//
// Playback:
//
//	Player draws one generation per tick on a tcell.Screen, then overlays the
//	path and a status line. Run drives an input pump and the playback loop
//	as an errgroup: 'q', Esc or Ctrl-C stop at any time, and once playback has
//	finished any key returns. Cancelling the context stops both.
//
//	The caller owns the screen: it calls Init before NewPlayer and Fini after
//	Run returns.
package replay
