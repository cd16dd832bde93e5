package errs

// Ledger-wide sentinel errors shared by the domain, usecase and handler layers.
var (
	// Identity and input validation
	ErrInvalidIdentity = New("invalid identity")
	ErrInvalidRate     = New("invalid rate")
	ErrInvalidMetadata = New("invalid metadata")
	ErrInvalidAmount   = New("invalid amount")

	// Creator registry
	ErrAlreadyRegistered = New("creator already registered")
	ErrNotRegistered     = New("creator not registered")
	ErrCreatorNotFound   = New("creator not found")

	// Reservation
	ErrInvalidTimeWindow        = New("invalid time window")
	ErrSelfBookingNotAllowed    = New("self booking not allowed")
	ErrPaymentFailed            = New("payment failed")
	ErrNotFound                 = New("not found")
	ErrIdentifierSpaceExhausted = New("booking identifier space exhausted")

	// Administrative guard
	ErrNoOp = New("value unchanged")

	// Authorization
	ErrUnauthorized = New("unauthorized")

	// Fund transfer port
	ErrInsufficientFunds = New("insufficient funds")
	ErrTransferFailed    = New("transfer failed")

	// Configuration
	ErrUnknownPolicy = New("unknown policy")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
