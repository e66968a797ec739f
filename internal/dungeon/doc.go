// Package dungeon generates procedural dungeon layouts.
//
// A layout is produced by a four-stage pipeline run once per level: room
// placement on a cell grid, corridor carving along a minimum spanning tree,
// door and feature placement, and finally cross-level stair linking. The
// pipeline is a pure function of its parameters: all randomness flows through
// a single generator seeded from Params.Seed, so identical parameters produce
// identical output. The package performs no I/O and keeps no state between
// calls.
package dungeon
