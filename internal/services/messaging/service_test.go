package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/lootwheel/internal/rng/mocks"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetWinMessage_Celebration() {
	s.mockRandom.EXPECT().IntN(3).Return(0)

	output, err := s.service.GetWinMessage(s.ctx, &GetWinMessageInput{
		ParticipantName: "Alice",
		PrizeName:       "Sword",
		Remaining:       2,
	})
	s.Require().NoError(err)
	s.Equal("🎉 Alice won: Sword", output.Message)
	s.Equal("Loot!", output.Title)
	s.Equal(ToneCelebration, output.Tone)
}

func (s *MessagingServiceTestSuite) TestGetWinMessage_LastUnit() {
	output, err := s.service.GetWinMessage(s.ctx, &GetWinMessageInput{
		ParticipantName: "Alice",
		PrizeName:       "Sword",
		PreferredTone:   ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Alice won: Sword", output.Message)
	s.Equal("Loot! That was the last Sword", output.Title)
}

func (s *MessagingServiceTestSuite) TestGetAdvisoryMessage() {
	testCases := []struct {
		name     string
		err      error
		contains string
	}{
		{"no stock", raffle.ErrNoStock, "stock"},
		{"no participant", raffle.ErrNoActiveParticipant, "active"},
		{"spinning", raffle.ErrSpinInProgress, "spinning"},
		{"wrapped import", fmt.Errorf("%w: bad wins", raffle.ErrMalformedImport), "import"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRandom.EXPECT().IntN(gomock.Any()).Return(0).MaxTimes(1)

			output, err := s.service.GetAdvisoryMessage(s.ctx, &GetAdvisoryMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.True(output.Warn)
			s.Contains(output.Message, tc.contains)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetAdvisoryMessage_DuplicateNamesPlayer() {
	output, err := s.service.GetAdvisoryMessage(s.ctx, &GetAdvisoryMessageInput{
		Err:  raffle.ErrDuplicateParticipant,
		Name: "Ana",
	})
	s.Require().NoError(err)
	s.Equal(`The player "Ana" is already on the list.`, output.Message)
}

func (s *MessagingServiceTestSuite) TestGetAdvisoryMessage_InfrastructureError() {
	s.mockRandom.EXPECT().IntN(2).Return(1)

	output, err := s.service.GetAdvisoryMessage(s.ctx, &GetAdvisoryMessageInput{
		Err: errors.New("dial tcp: connection refused"),
	})
	s.Require().NoError(err)
	s.False(output.Warn)
	s.NotContains(output.Message, "dial tcp")
}

func (s *MessagingServiceTestSuite) TestGetAdvisoryMessage_NilError() {
	_, err := s.service.GetAdvisoryMessage(s.ctx, &GetAdvisoryMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetActionMessage() {
	output, err := s.service.GetActionMessage(s.ctx, &GetActionMessageInput{
		Action: ActionPrizeAdded,
		Name:   "Gem",
		Count:  3,
	})
	s.Require().NoError(err)
	s.Equal(`Loot "Gem" added (x3)`, output.Message)

	output, err = s.service.GetActionMessage(s.ctx, &GetActionMessageInput{
		Action:  ActionBulkAdded,
		Count:   2,
		Skipped: []string{"Ana", "Bo"},
	})
	s.Require().NoError(err)
	s.Equal("Loaded 2 players. Already on the list: Ana, Bo.", output.Message)

	_, err = s.service.GetActionMessage(s.ctx, &GetActionMessageInput{Action: "dance"})
	s.Error(err)
}
