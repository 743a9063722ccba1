// Package threestones provides a client for playing Three Stones against a remote server over TCP
// utility.go contains private utility functions for the package
package threestones

// Generates a message asking the server to start a game
func requestPlayMessage() Message {
	return Message{Opcode: OpRequestPlay}
}

// Generates a message telling the server the player is leaving
func quitMessage() Message {
	return Message{Opcode: OpQuit}
}

// Generates a move message. The scores echo the last values the server sent.
func moveMessage(move Position, playerScore, opponentScore int) Message {
	return Message{
		Opcode: OpMove,
		Arg1:   uint8(move.Row),
		Arg2:   uint8(move.Col),
		Arg3:   uint8(playerScore),
		Arg4:   uint8(opponentScore),
	}
}

// Reads the counter-move carried by an accepted move reply
func counterMove(reply Message) Position {
	return Position{Row: int(reply.Arg1), Col: int(reply.Arg2)}
}

//!--
