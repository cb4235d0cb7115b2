package commands

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateEstimateCommandIsNotConstructed = errors.New(
		"CreateEstimateCommand must be created via NewCreateEstimateCommand constructor",
	)
)

// EstimateItemInput carries the fields of one line item on a new estimate.
// Monetary values are exact decimals; negatives (credits) are permitted.
type EstimateItemInput struct {
	Description    string
	Quantity       int
	Cost           decimal.Decimal
	Amount         decimal.Decimal
	ShippingAmount decimal.Decimal
	Ink            string
	Size           string
	Notes          string
}

// CreateEstimateCommand represents a request to create a new Draft estimate
// with its line items, as filled out on the estimate form.
type CreateEstimateCommand struct { //nolint:recvcheck //using for validation
	estimateID  kernel.UUID
	officeID    kernel.UUID
	contactID   kernel.UUID
	creatorID   kernel.UUID
	poNumber    string
	dateIn      time.Time
	inHandsDate *time.Time
	items       []EstimateItemInput

	guard guard.ConstructorGuard
}

// NewCreateEstimateCommand creates a command to register a new estimate.
// Validates identifiers and requires at least one item with a description
// and positive quantity.
func NewCreateEstimateCommand(
	estimateID kernel.UUID,
	officeID kernel.UUID,
	contactID kernel.UUID,
	creatorID kernel.UUID,
	poNumber string,
	dateIn time.Time,
	inHandsDate *time.Time,
	items []EstimateItemInput,
) (CreateEstimateCommand, error) {
	cmd := CreateEstimateCommand{
		poNumber:    poNumber,
		dateIn:      dateIn,
		inHandsDate: inHandsDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEstimateID(estimateID),
		cmd.setOfficeID(officeID),
		cmd.setContactID(contactID),
		cmd.setCreatorID(creatorID),
		cmd.setItems(items),
	); err != nil {
		return CreateEstimateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEstimateCommand) Validate() error {
	return c.guard.Validate(ErrCreateEstimateCommandIsNotConstructed)
}

// EstimateID returns the identifier for the new estimate.
func (c CreateEstimateCommand) EstimateID() kernel.UUID {
	return c.estimateID
}

// OfficeID returns the identifier of the owning office.
func (c CreateEstimateCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// ContactID returns the identifier of the customer contact person.
func (c CreateEstimateCommand) ContactID() kernel.UUID {
	return c.contactID
}

// CreatorID returns the identifier of the creating user.
func (c CreateEstimateCommand) CreatorID() kernel.UUID {
	return c.creatorID
}

// PONumber returns the customer purchase-order number.
func (c CreateEstimateCommand) PONumber() string {
	return c.poNumber
}

// DateIn returns the date the job came in.
func (c CreateEstimateCommand) DateIn() time.Time {
	return c.dateIn
}

// InHandsDate returns the in-hands date, or nil when open.
func (c CreateEstimateCommand) InHandsDate() *time.Time {
	return c.inHandsDate
}

// Items returns the line-item inputs.
func (c CreateEstimateCommand) Items() []EstimateItemInput {
	return c.items
}

func (c *CreateEstimateCommand) setEstimateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.estimateID = id
	return nil
}

func (c *CreateEstimateCommand) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.officeID = id
	return nil
}

func (c *CreateEstimateCommand) setContactID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.contactID = id
	return nil
}

func (c *CreateEstimateCommand) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.creatorID = id
	return nil
}

func (c *CreateEstimateCommand) setItems(items []EstimateItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.Description == "" {
			return errs.NewValueIsRequiredError("item description")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("item quantity")
		}
	}

	c.items = items
	return nil
}
