package schematic

import "errors"

// Error kinds surfaced by the connectivity engine. Wrapped values carry the
// offending names; match with errors.Is.
var (
	// ErrInvalidDefinition reports a component constructed with no pins or
	// with duplicate pin names.
	ErrInvalidDefinition = errors.New("invalid component definition")

	// ErrDuplicateName reports a net or component registered under a name
	// that is already taken.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound reports an unknown net, component, or pin name.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange reports a numeric pin index outside [0, pin count).
	ErrOutOfRange = errors.New("pin index out of range")

	// ErrAlreadyConnected reports a connect attempt on a pin that already
	// has a net, including reconnecting to the same net.
	ErrAlreadyConnected = errors.New("pin already connected")

	// ErrFrozen reports structural mutation attempted after Freeze.
	ErrFrozen = errors.New("schematic is frozen")

	// ErrNotRegistered reports a component instance passed to ConnectPins
	// that is not present in the schematic's registry.
	ErrNotRegistered = errors.New("component not registered")

	// ErrUnmergedNets reports a ConnectPins call that found its two pins on
	// different nets without permission to merge them.
	ErrUnmergedNets = errors.New("pins on different nets")

	// ErrUnconnectedPin reports a validation failure: a pin with no net.
	ErrUnconnectedPin = errors.New("unconnected pin")

	// ErrNoGround reports a ground lookup on a schematic with no ground net.
	ErrNoGround = errors.New("no ground net defined")

	// ErrMultipleGrounds reports a ground lookup that found more than one
	// net flagged as ground.
	ErrMultipleGrounds = errors.New("multiple ground nets defined")
)
