// Package oracle names the Chess Board Oracle: the external collaborator every layer of
// this module (attackers, exchange, tactics, mistakes) is written against, and the only
// thing it depends on for board state. Neither this module nor the Board interface
// performs move generation or legality checking: callers supply the moves to classify.
package oracle

import "github.com/tacticians-go/tactix/pkg/board"

// Board is the oracle interface. It is an alias for board.Oracle, which is declared
// alongside its reference implementation *board.Position so that Position.Apply can
// return it without an import cycle between pkg/board and pkg/oracle.
type Board = board.Oracle
