package commands

import (
	"errors"
)

var ErrCancelTimedOutOrdersCommandIsNotConstructed = errors.New(
	"CancelTimedOutOrdersCommand must be created via NewCancelTimedOutOrdersCommand constructor",
)

// CancelTimedOutOrdersCommand represents one sweep over orders that sat in
// pending payment longer than the configured timeout.
type CancelTimedOutOrdersCommand struct {
	isConstructed bool
}

// NewCancelTimedOutOrdersCommand creates a sweep command. The timeout is
// handler configuration, not command input.
func NewCancelTimedOutOrdersCommand() CancelTimedOutOrdersCommand {
	return CancelTimedOutOrdersCommand{isConstructed: true}
}

// Validate ensures the command was created through the constructor.
func (c CancelTimedOutOrdersCommand) Validate() error {
	if !c.isConstructed {
		return ErrCancelTimedOutOrdersCommandIsNotConstructed
	}
	return nil
}
