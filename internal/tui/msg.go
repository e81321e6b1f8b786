package tui

import (
	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
)

// Msg is the sealed interface for all console messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgReply is sent when an exchange with the assistant finishes.
type MsgReply struct {
	Reply assistant.Reply
}

func (MsgReply) sealed() {}

// MsgProjectLoaded is sent when the current project has been read.
type MsgProjectLoaded struct {
	Project *domain.Project
	Err     error
}

func (MsgProjectLoaded) sealed() {}

// MsgRecurringChecked is sent after a recurring task check.
type MsgRecurringChecked struct {
	Err     error
	Created int
}

func (MsgRecurringChecked) sealed() {}

// MsgRecurringTick triggers the next recurring task check.
type MsgRecurringTick struct{}

func (MsgRecurringTick) sealed() {}

// MsgRemindersChecked is sent after a due-date reminder check.
type MsgRemindersChecked struct {
	Err       error
	Reminders []string
}

func (MsgRemindersChecked) sealed() {}
