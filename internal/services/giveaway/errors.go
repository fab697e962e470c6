package giveaway

// GiveawayError is a custom error type for giveaway-related errors
type GiveawayError string

// Error implements the error interface
func (e GiveawayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrItemNotFound        GiveawayError = "item not found"
	ErrInvalidWinnersCount GiveawayError = "winners count must be a positive number"
	ErrEndTimeInPast       GiveawayError = "end time must be in the future"
	ErrGiveawayNotActive   GiveawayError = "giveaway not found or already ended/cancelled"
	ErrGiveawayExpired     GiveawayError = "giveaway has already ended"
	ErrMissingMessage      GiveawayError = "giveaway message ID is required"
	ErrNilConfig           GiveawayError = "config cannot be nil"
	ErrNilGiveawayRepo     GiveawayError = "giveaway repository cannot be nil"
	ErrNilItemRepo         GiveawayError = "item repository cannot be nil"
	ErrNilSelector         GiveawayError = "winner selector cannot be nil"
	ErrNilClock            GiveawayError = "clock cannot be nil"
)
