package raffle

import "errors"

// RaffleError is a custom error type for raffle-related errors
type RaffleError string

// Error implements the error interface
func (e RaffleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoStock              RaffleError = "no prize has stock left"
	ErrNoActiveParticipant  RaffleError = "no active participant selected"
	ErrSpinInProgress       RaffleError = "a spin is already in progress"
	ErrInvalidRaffleID      RaffleError = "raffle ID cannot be empty"
	ErrInvalidPrize         RaffleError = "prize needs a name and a quantity above zero"
	ErrInvalidParticipant   RaffleError = "participant needs a name"
	ErrDuplicateParticipant RaffleError = "participant already exists"
	ErrPrizeNotFound        RaffleError = "prize not found"
	ErrParticipantNotFound  RaffleError = "participant not found"
	ErrMalformedImport      RaffleError = "import document is not a valid raffle"
	ErrNilConfig            RaffleError = "config cannot be nil"
	ErrNilRepository        RaffleError = "raffle repository cannot be nil"
	ErrNilRandom            RaffleError = "random source cannot be nil"
	ErrNilClock             RaffleError = "clock cannot be nil"
	ErrNilUUIDGenerator     RaffleError = "UUID generator cannot be nil"
)

// IsAdvisory reports whether err is a user-facing precondition failure that
// left the raffle unchanged, as opposed to an infrastructure failure
func IsAdvisory(err error) bool {
	var re RaffleError
	if !errors.As(err, &re) {
		return false
	}
	switch re {
	case ErrNilConfig, ErrNilRepository, ErrNilRandom, ErrNilClock, ErrNilUUIDGenerator:
		return false
	}
	return true
}
