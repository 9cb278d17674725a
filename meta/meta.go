// meta/meta.go
package meta

// BOARD_SIZE is the edge length of the square board.
const BOARD_SIZE = 6

// SEARCH_DEPTH defines the plies searched by minimax and alpha-beta agents.
const SEARCH_DEPTH = 3

// GREEDY_DEPTH defines the plies searched by the greedy agent.
const GREEDY_DEPTH = 1

// MAX_TURNS caps a game where neither seat can finish it.
const MAX_TURNS = 500
