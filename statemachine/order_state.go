package statemachine

import (
	"errors"

	"foodondoor-backend/models"
)

// Actor names who may perform a transition.
const (
	ActorVendor   = "vendor"
	ActorCustomer = "customer"
	ActorCourier  = "courier"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition. Orders
// move strictly forward; Cancelled is reachable from any non-terminal state
// by the actor responsible for that phase.
var validTransitions = []Transition{
	// Vendor accepts the order
	{From: models.StatusPlaced, To: models.StatusAccepted, Actor: ActorVendor},
	// Vendor or Customer can cancel before preparation starts
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusAccepted, To: models.StatusPreparing, Actor: ActorVendor},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: ActorCustomer},
	// Vendor owns the kitchen phase
	{From: models.StatusPreparing, To: models.StatusReadyForPickup, Actor: ActorVendor},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusReadyForPickup, To: models.StatusCancelled, Actor: ActorVendor},
	// Courier handles pickup and delivery
	{From: models.StatusReadyForPickup, To: models.StatusPickedUp, Actor: ActorCourier},
	{From: models.StatusPickedUp, To: models.StatusDelivered, Actor: ActorCourier},
	// Failed delivery
	{From: models.StatusPickedUp, To: models.StatusCancelled, Actor: ActorCourier},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
