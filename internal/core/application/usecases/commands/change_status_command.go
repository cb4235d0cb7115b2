package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrChangeStatusCommandIsNotConstructed = errors.New(
		"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
	)
)

// EntityType identifies which state machine a status change targets.
type EntityType int

const (
	// EntityUnknown represents an invalid or undefined entity type.
	EntityUnknown EntityType = iota

	// EntityEstimate targets an estimate's workflow status.
	EntityEstimate

	// EntityEstimateItem targets an estimate line item's workflow status.
	EntityEstimateItem

	// EntityOrder targets an order's lifecycle status.
	EntityOrder

	// EntityOrderItem targets an order line item's production status.
	EntityOrderItem
)

// getEntityTypeStrings returns a map of EntityType values to their string representations.
func getEntityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		EntityUnknown:      "Unknown",
		EntityEstimate:     "Estimate",
		EntityEstimateItem: "EstimateItem",
		EntityOrder:        "Order",
		EntityOrderItem:    "OrderItem",
	}
}

// EntityTypeFromString parses an entity type name as it appears on the wire.
func EntityTypeFromString(s string) (EntityType, error) {
	for entityType, name := range getEntityTypeStrings() {
		if entityType != EntityUnknown && name == s {
			return entityType, nil
		}
	}
	return EntityUnknown, errs.NewValueIsInvalidErrorWithCause("entity type",
		fmt.Errorf("%q is not a valid entity type", s))
}

// Validate checks that the EntityType value is a member of the enumeration.
func (e EntityType) Validate() error {
	if _, ok := getEntityTypeStrings()[e]; !ok || e == EntityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("entity type",
			fmt.Errorf("%d is not a valid entity type", e))
	}
	return nil
}

// String returns the human-readable name of the entity type.
func (e EntityType) String() string {
	if str, ok := getEntityTypeStrings()[e]; ok {
		return str
	}
	return "Unknown"
}

// ChangeStatusCommand represents a user-driven status change on an estimate,
// estimate item, order, or order item, typically a card dragged to another
// board column. The target status is carried by name and parsed against the
// entity's own enumeration by the handler.
//
// When notify is set, a status notification is emitted after the change is
// durably committed; a failed notification never rolls back the transition.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	entityType        EntityType
	entityID          kernel.UUID
	targetStatus      string
	notify            bool
	recipientOverride string

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to change the status of an entity.
// When notify is set, recipientOverride carries the address the notification
// goes to and must not be empty; without notify it is ignored.
func NewChangeStatusCommand(
	entityType EntityType,
	entityID kernel.UUID,
	targetStatus string,
	notify bool,
	recipientOverride string,
) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntityType(entityType),
		cmd.setEntityID(entityID),
		cmd.setTargetStatus(targetStatus),
		cmd.setNotification(notify, recipientOverride),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// EntityType returns which state machine the change targets.
func (c ChangeStatusCommand) EntityType() EntityType {
	return c.entityType
}

// EntityID returns the identifier of the entity to transition.
func (c ChangeStatusCommand) EntityID() kernel.UUID {
	return c.entityID
}

// TargetStatus returns the requested status by name.
func (c ChangeStatusCommand) TargetStatus() string {
	return c.targetStatus
}

// Notify reports whether a status notification should be emitted after commit.
func (c ChangeStatusCommand) Notify() bool {
	return c.notify
}

// RecipientOverride returns the notification recipient override, or empty.
func (c ChangeStatusCommand) RecipientOverride() string {
	return c.recipientOverride
}

func (c *ChangeStatusCommand) setEntityType(entityType EntityType) error {
	if err := entityType.Validate(); err != nil {
		return err
	}
	c.entityType = entityType
	return nil
}

func (c *ChangeStatusCommand) setEntityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.entityID = id
	return nil
}

func (c *ChangeStatusCommand) setTargetStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("targetStatus")
	}
	c.targetStatus = status
	return nil
}

func (c *ChangeStatusCommand) setNotification(notify bool, recipientOverride string) error {
	if notify && recipientOverride == "" {
		return errs.NewValueIsRequiredError("recipientOverride")
	}
	c.notify = notify
	c.recipientOverride = recipientOverride
	return nil
}
