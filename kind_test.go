package arbor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test components
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }

var (
	positionKind = RegisterKind[Position]("position")
	velocityKind = RegisterKind[Velocity]("velocity")
	healthKind   = RegisterKind[Health]("health")
)

func TestRegisterKind(t *testing.T) {
	assert.True(t, positionKind.Valid())
	assert.Equal(t, "position", positionKind.Name())
	assert.Equal(t, "velocity", velocityKind.ID().String())
	assert.NotEqual(t, positionKind.ID(), velocityKind.ID())
	assert.NotEqual(t, velocityKind.ID(), healthKind.ID())
}

func TestRegisterKindSameTypeTwice(t *testing.T) {
	first := RegisterKind[Health]("health-a")
	second := RegisterKind[Health]("health-b")
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, "health-b", second.Name())
}

func TestZeroKindIsInvalid(t *testing.T) {
	var k Kind[Position]
	assert.False(t, k.Valid())
	assert.Equal(t, "<invalid>", k.Name())
}

func TestKindIDStringUnregistered(t *testing.T) {
	kindRegistry.mu.RLock()
	n := len(kindRegistry.names)
	kindRegistry.mu.RUnlock()
	if n >= MaxKinds {
		t.Skip("every kind is registered")
	}
	assert.Equal(t, "kind#255", KindID(255).String())
}

func TestKindsOfDifferentDataDoNotConvert(t *testing.T) {
	pos := reflect.TypeFor[Kind[Position]]()
	vel := reflect.TypeFor[Kind[Velocity]]()
	assert.False(t, pos.ConvertibleTo(vel))
	assert.False(t, vel.ConvertibleTo(pos))
	assert.True(t, pos.ConvertibleTo(reflect.TypeFor[Kind[Position]]()))
}
