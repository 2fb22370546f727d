// Package tetra implements a falling-block puzzle engine: a bounded occupancy
// grid, the seven tetromino shapes with Standard Rotation System wall kicks, a
// falling piece with gravity and lock delay, and a Board that runs the
// spawn, lock, clear cycle. The package never reads a clock; hosts pass
// elapsed time to Board.Update.
package tetra
