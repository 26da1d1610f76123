// meta/meta.go
package meta

// MAX_NODE defines the number of search passes per move.
const MAX_NODE = 8196

// MAX_STEP defines the playout depth after which a simulation is inconclusive.
const MAX_STEP = 256

// EXPLORATION defines the UCB exploration constant.
const EXPLORATION = 1.414 * 0.3

// MAX_TURNS defines the number of plies after which a match is drawn.
const MAX_TURNS = 300

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8
