package statemachine

import (
	"testing"

	"foodondoor-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestHappyPath(t *testing.T) {
	steps := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPlaced, models.StatusAccepted, ActorVendor},
		{models.StatusAccepted, models.StatusPreparing, ActorVendor},
		{models.StatusPreparing, models.StatusReadyForPickup, ActorVendor},
		{models.StatusReadyForPickup, models.StatusPickedUp, ActorCourier},
		{models.StatusPickedUp, models.StatusDelivered, ActorCourier},
	}
	for _, s := range steps {
		assert.NoError(t, CanTransition(s.from, s.to, s.actor),
			"%s → %s by %s", s.from, s.to, s.actor)
	}
}

func TestActorScoping(t *testing.T) {
	// The right transition by the wrong actor is rejected
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusAccepted, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusAccepted, ActorCourier))
	assert.Error(t, CanTransition(models.StatusReadyForPickup, models.StatusPickedUp, ActorVendor))
	assert.Error(t, CanTransition(models.StatusPickedUp, models.StatusDelivered, ActorVendor))
}

func TestCancellationWindows(t *testing.T) {
	// Customer may cancel only before preparation starts
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled, ActorCustomer))
	assert.NoError(t, CanTransition(models.StatusAccepted, models.StatusCancelled, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusCancelled, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusPickedUp, models.StatusCancelled, ActorCustomer))

	// Vendor may cancel any pre-pickup state
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusCancelled, ActorVendor))
	assert.NoError(t, CanTransition(models.StatusReadyForPickup, models.StatusCancelled, ActorVendor))
	assert.Error(t, CanTransition(models.StatusPickedUp, models.StatusCancelled, ActorVendor))

	// Courier handles failed deliveries
	assert.NoError(t, CanTransition(models.StatusPickedUp, models.StatusCancelled, ActorCourier))
}

func TestNoSkippingStates(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusPreparing, ActorVendor))
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusDelivered, ActorCourier))
	assert.Error(t, CanTransition(models.StatusAccepted, models.StatusReadyForPickup, ActorVendor))
}

func TestNoBackwardTransitions(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusAccepted, models.StatusPlaced, ActorVendor))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusPickedUp, ActorCourier))
}

func TestTerminalStates(t *testing.T) {
	for _, actor := range []string{ActorVendor, ActorCustomer, ActorCourier} {
		assert.Error(t, CanTransition(models.StatusDelivered, models.StatusCancelled, actor))
		assert.Error(t, CanTransition(models.StatusCancelled, models.StatusPlaced, actor))
	}
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusAccepted, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPlaced))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPickedUp, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusReadyForPickup))
}

func TestErrorMessageNamesValidNextStates(t *testing.T) {
	err := CanTransition(models.StatusPlaced, models.StatusDelivered, ActorCourier)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Accepted")
	assert.Contains(t, err.Error(), "Cancelled")
}
