package item

// ItemError is a custom error type for item-related errors
type ItemError string

// Error implements the error interface
func (e ItemError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDraftNotFound    ItemError = "no item draft in progress"
	ErrCreateItemFailed ItemError = "failed to create item"
	ErrInvalidDraftStep ItemError = "item draft is in an unknown step"
	ErrNilConfig        ItemError = "config cannot be nil"
	ErrNilItemRepo      ItemError = "item repository cannot be nil"
	ErrNilDraftRepo     ItemError = "item draft repository cannot be nil"
	ErrNilClock         ItemError = "clock cannot be nil"
	ErrInvalidPromptTTL ItemError = "prompt TTL must be positive"
)
