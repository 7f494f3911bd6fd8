package raffle

import (
	"context"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/selection"
	"github.com/KirkDiggler/lootwheel/internal/wheel"
	"github.com/google/logger"
)

// Spin draws a prize for a participant and animates the wheel.
//
// The prize is chosen before the animation starts. Once the wheel lands the
// award is applied and persisted, then the wheel returns to rest. Only then
// does the raffle accept another spin or any other change. A started spin is
// not cancelled by ctx.
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}
	raffleID := input.RaffleID

	lock := s.lockFor(raffleID)
	lock.Lock()

	if s.isSpinning(raffleID) {
		lock.Unlock()
		return nil, ErrSpinInProgress
	}

	state, err := s.load(ctx, raffleID)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	prizes := state.AvailablePrizes()
	if len(prizes) == 0 {
		lock.Unlock()
		return nil, ErrNoStock
	}

	participant := state.FindParticipant(input.ParticipantID)
	if participant == nil || !participant.Active {
		lock.Unlock()
		return nil, ErrNoActiveParticipant
	}

	idx, err := selection.SelectPrize(prizes, state.LastPrizeID, state.Options.NoRepeatPrize, state.Options.WeightedByStock, s.random)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	s.setSpinning(raffleID, true)
	lock.Unlock()
	defer s.setSpinning(raffleID, false)

	ctx = context.WithoutCancel(ctx)
	w := s.wheelFor(raffleID)
	slices := len(prizes)

	landing := s.animator.Spin(w, idx, slices, s.frameFunc(raffleID, FramePhaseSpin, slices))

	prize := prizes[idx]
	entry := s.award(state, prize, participant)

	lock.Lock()
	err = s.save(ctx, raffleID, state)
	lock.Unlock()

	s.animator.Return(w, s.frameFunc(raffleID, FramePhaseReturn, len(state.AvailablePrizes())))

	if err != nil {
		return nil, err
	}

	logger.Infof("Raffle %s: %s won %s (%d/%d left)", raffleID, participant.Name, prize.Name, prize.Remaining, prize.Qty)
	return &SpinOutput{
		Prize:        prize,
		Participant:  participant,
		Entry:        entry,
		PrizeIndex:   idx,
		Slices:       slices,
		LandingAngle: landing,
	}, nil
}

// award applies a won prize to the state
func (s *service) award(state *models.RaffleState, prize *models.Prize, participant *models.Participant) *models.HistoryEntry {
	if prize.Remaining > 0 {
		prize.Remaining--
	}
	state.LastPrizeID = prize.ID

	participant.RecordWin(prize.Name)

	entry := &models.HistoryEntry{
		Timestamp:       s.clock.Now().UnixMilli(),
		ParticipantName: participant.Name,
		PrizeName:       prize.Name,
	}
	state.History = append(state.History, entry)

	if state.Options.UniqueWinner {
		participant.Active = false
	}

	return entry
}

func (s *service) frameFunc(raffleID string, phase FramePhase, slices int) wheel.FrameFunc {
	return func(angle, t float64) {
		s.renderer.RenderFrame(raffleID, &Frame{
			Phase:    phase,
			Angle:    angle,
			Progress: t,
			Slices:   slices,
		})
	}
}
