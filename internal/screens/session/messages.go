package session

import (
	"github.com/abhisek/autodidact/internal/tutor"
)

// sessionReadyMsg is sent when the session has been started or resumed.
type sessionReadyMsg struct {
	State tutor.State
	Err   error
}

// turnDoneMsg is sent when the engine has finished processing a turn.
type turnDoneMsg struct {
	State tutor.State
	Err   error
}
