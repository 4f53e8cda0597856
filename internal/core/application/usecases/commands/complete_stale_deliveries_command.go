package commands

import (
	"errors"
)

var ErrCompleteStaleDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteStaleDeliveriesCommand must be created via NewCompleteStaleDeliveriesCommand constructor",
)

// CompleteStaleDeliveriesCommand represents one sweep over deliveries that
// were never marked completed by the merchant.
type CompleteStaleDeliveriesCommand struct {
	isConstructed bool
}

// NewCompleteStaleDeliveriesCommand creates a sweep command. The stale age
// is handler configuration, not command input.
func NewCompleteStaleDeliveriesCommand() CompleteStaleDeliveriesCommand {
	return CompleteStaleDeliveriesCommand{isConstructed: true}
}

// Validate ensures the command was created through the constructor.
func (c CompleteStaleDeliveriesCommand) Validate() error {
	if !c.isConstructed {
		return ErrCompleteStaleDeliveriesCommandIsNotConstructed
	}
	return nil
}
