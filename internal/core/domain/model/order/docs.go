// Package order provides domain entities and business logic for order
// lifecycle management in the fulfillment system. It implements the Order
// aggregate root with state transitions and per-party authorization.
//
// The package includes:
//   - Order: The aggregate root holding identity, commercial snapshots, and lifecycle timestamps
//   - Status: A state machine enforcing the nine-state fulfillment workflow
//   - NumberGenerator: Human-facing order number generation with injectable clock and randomness
//
// Key business rules:
//   - Status follows pending -> confirmed -> assigned -> picked_up -> in_transit -> delivered -> signed,
//     with cancelled (from pending/confirmed) and abnormal (from any non-terminal state) as absorbing states
//   - Total price, product name, and shipping details are immutable snapshots taken at creation
//   - confirmedAt, deliveredAt, and signedAt are set exactly once
//   - Every transition checks the caller against the party the operation requires
//     (merchant confirms, assigned agent moves the package, customer signs or cancels)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
