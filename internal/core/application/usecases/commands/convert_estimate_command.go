package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrConvertEstimateCommandIsNotConstructed = errors.New(
		"ConvertEstimateCommand must be created via NewConvertEstimateCommand constructor",
	)
)

// ConvertEstimateCommand represents a request to convert an approved estimate
// into a binding production order. The target office may differ from the
// estimate's original office, e.g. for a walk-in conversion.
//
// The caller is responsible for permission checks: this core assumes the
// actor may read the estimate and create orders in the target office.
type ConvertEstimateCommand struct { //nolint:recvcheck //using for validation
	estimateID kernel.UUID
	officeID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewConvertEstimateCommand creates a command to convert an estimate into an
// order. Validates that both identifiers are valid.
func NewConvertEstimateCommand(estimateID, officeID kernel.UUID) (ConvertEstimateCommand, error) {
	cmd := ConvertEstimateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEstimateID(estimateID),
		cmd.setOfficeID(officeID),
	); err != nil {
		return ConvertEstimateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConvertEstimateCommand) Validate() error {
	return c.guard.Validate(ErrConvertEstimateCommandIsNotConstructed)
}

// EstimateID returns the identifier of the estimate to convert.
func (c ConvertEstimateCommand) EstimateID() kernel.UUID {
	return c.estimateID
}

// OfficeID returns the identifier of the office the order is created in.
func (c ConvertEstimateCommand) OfficeID() kernel.UUID {
	return c.officeID
}

func (c *ConvertEstimateCommand) setEstimateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.estimateID = id
	return nil
}

func (c *ConvertEstimateCommand) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.officeID = id
	return nil
}
