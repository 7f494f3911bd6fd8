package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/rng"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle/mocks"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *mocks.MockService
	hub         *Hub
	router      *gin.Engine

	testRaffleID string
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)
	s.hub = NewHub(nil)
	s.testRaffleID = "raid-night"

	messagingService, err := messaging.NewService(&messaging.Config{
		Random: rng.New(&rng.Config{Seed: 7}),
	})
	s.Require().NoError(err)

	handler, err := New(&Config{
		RaffleService:    s.mockService,
		MessagingService: messagingService,
		Hub:              s.hub,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.hub.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/raffles/"+s.testRaffleID+path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{RaffleService: s.mockService})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGetState() {
	state := models.NewRaffleState()
	state.Prizes = []*models.Prize{{ID: "gem", Name: "Gem", Qty: 2, Remaining: 1}}

	s.mockService.EXPECT().
		GetState(gomock.Any(), &raffle.GetStateInput{RaffleID: s.testRaffleID}).
		Return(&raffle.GetStateOutput{State: state}, nil)

	w := s.do(http.MethodGet, "", "", nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal(false, body["spinning"])
	prizes := body["state"].(map[string]any)["prizes"].([]any)
	s.Require().Len(prizes, 1)
	s.Equal("Gem", prizes[0].(map[string]any)["name"])
}

func (s *HandlerTestSuite) TestListRaffles() {
	s.mockService.EXPECT().
		ListRaffles(gomock.Any(), &raffle.ListRafflesInput{}).
		Return(&raffle.ListRafflesOutput{RaffleIDs: []string{"guild-night", s.testRaffleID}}, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raffles", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{"guild-night", s.testRaffleID}, s.decode(w)["raffles"])
}

func (s *HandlerTestSuite) TestListRafflesEmpty() {
	s.mockService.EXPECT().
		ListRaffles(gomock.Any(), gomock.Any()).
		Return(&raffle.ListRafflesOutput{}, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raffles", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{}, s.decode(w)["raffles"])
}

func (s *HandlerTestSuite) TestAddPrize() {
	s.mockService.EXPECT().
		AddPrize(gomock.Any(), &raffle.AddPrizeInput{RaffleID: s.testRaffleID, Name: "Gem", Qty: 3}).
		Return(&raffle.AddPrizeOutput{Prize: &models.Prize{ID: "gem", Name: "Gem", Qty: 3, Remaining: 3}}, nil)

	w := s.do(http.MethodPost, "/prizes", gin.MIMEJSON, []byte(`{"name":"Gem","qty":3}`))
	s.Equal(http.StatusOK, w.Code)
	s.Equal(`Loot "Gem" added (x3)`, s.decode(w)["message"])
}

func (s *HandlerTestSuite) TestAddPrize_BadBody() {
	w := s.do(http.MethodPost, "/prizes", gin.MIMEJSON, []byte(`{"qty":"many"}`))
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(true, s.decode(w)["warn"])
}

func (s *HandlerTestSuite) TestPrizeActionNotFound() {
	s.mockService.EXPECT().
		DecrementPrize(gomock.Any(), &raffle.PrizeInput{RaffleID: s.testRaffleID, PrizeID: "gone"}).
		Return(nil, raffle.ErrPrizeNotFound)

	w := s.do(http.MethodPost, "/prizes/gone/decrement", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestAddParticipantDuplicate() {
	s.mockService.EXPECT().
		AddParticipant(gomock.Any(), &raffle.AddParticipantInput{RaffleID: s.testRaffleID, Name: "Ana"}).
		Return(nil, raffle.ErrDuplicateParticipant)

	w := s.do(http.MethodPost, "/participants", gin.MIMEJSON, []byte(`{"name":"Ana"}`))
	s.Equal(http.StatusConflict, w.Code)

	body := s.decode(w)
	s.Equal(true, body["warn"])
	s.Equal(`The player "Ana" is already on the list.`, body["message"])
}

func (s *HandlerTestSuite) TestAddParticipantsBulkPlainText() {
	s.mockService.EXPECT().
		AddParticipantsBulk(gomock.Any(), &raffle.AddParticipantsBulkInput{RaffleID: s.testRaffleID, Text: "Ana\nBo"}).
		Return(&raffle.AddParticipantsBulkOutput{
			Added:   []*models.Participant{{ID: "1", Name: "Ana", Active: true}},
			Skipped: []string{"Bo"},
		}, nil)

	w := s.do(http.MethodPost, "/participants/bulk", "text/plain", []byte("Ana\nBo"))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Loaded 1 players. Already on the list: Bo.", s.decode(w)["message"])
}

func (s *HandlerTestSuite) TestAddParticipantsBulkJSON() {
	s.mockService.EXPECT().
		AddParticipantsBulk(gomock.Any(), &raffle.AddParticipantsBulkInput{RaffleID: s.testRaffleID, Text: "Ana\nBo"}).
		Return(&raffle.AddParticipantsBulkOutput{}, nil)

	w := s.do(http.MethodPost, "/participants/bulk", gin.MIMEJSON, []byte(`{"text":"Ana\nBo"}`))
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestNextParticipant() {
	s.mockService.EXPECT().
		NextParticipant(gomock.Any(), &raffle.NextParticipantInput{RaffleID: s.testRaffleID, AfterID: "a"}).
		Return(&raffle.NextParticipantOutput{Participant: &models.Participant{ID: "b", Name: "Bo", Active: true}}, nil)

	w := s.do(http.MethodGet, "/participants/next?after=a", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("b", s.decode(w)["participant"].(map[string]any)["id"])
}

func (s *HandlerTestSuite) TestToggleParticipant() {
	s.mockService.EXPECT().
		ToggleParticipant(gomock.Any(), &raffle.ParticipantInput{RaffleID: s.testRaffleID, ParticipantID: "a"}).
		Return(&raffle.ParticipantOutput{Participant: &models.Participant{ID: "a", Name: "Ana"}}, nil)

	w := s.do(http.MethodPost, "/participants/a/toggle", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestSetOptionsPartial() {
	off := false
	s.mockService.EXPECT().
		SetOptions(gomock.Any(), &raffle.SetOptionsInput{RaffleID: s.testRaffleID, NoRepeatPrize: &off}).
		Return(&raffle.SetOptionsOutput{Options: models.Options{UniqueWinner: true, WeightedByStock: true}}, nil)

	w := s.do(http.MethodPut, "/options", gin.MIMEJSON, []byte(`{"noRepeatPrize":false}`))
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestSpin() {
	s.mockService.EXPECT().
		Spin(gomock.Any(), &raffle.SpinInput{RaffleID: s.testRaffleID, ParticipantID: "alice"}).
		Return(&raffle.SpinOutput{
			Prize:       &models.Prize{ID: "sword", Name: "Sword", Qty: 1, Remaining: 0},
			Participant: &models.Participant{ID: "alice", Name: "Alice", Wins: models.Wins{"Sword": 1}},
			Entry:       &models.HistoryEntry{Timestamp: 1, ParticipantName: "Alice", PrizeName: "Sword"},
			Slices:      1,
		}, nil)

	w := s.do(http.MethodPost, "/spin", gin.MIMEJSON, []byte(`{"participantId":"alice"}`))
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("Loot! That was the last Sword", body["title"])
	s.Contains(body["message"], "Alice")
	s.Contains(body["message"], "Sword")
}

func (s *HandlerTestSuite) TestSpinNoStockIsAdvisory() {
	s.mockService.EXPECT().
		Spin(gomock.Any(), gomock.Any()).
		Return(nil, raffle.ErrNoStock)

	w := s.do(http.MethodPost, "/spin", gin.MIMEJSON, []byte(`{"participantId":"alice"}`))
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(true, s.decode(w)["warn"])
}

func (s *HandlerTestSuite) TestInfrastructureErrorIsNotAdvisory() {
	s.mockService.EXPECT().
		GetHistory(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis: connection refused"))

	w := s.do(http.MethodGet, "/history", "", nil)
	s.Equal(http.StatusInternalServerError, w.Code)

	body := s.decode(w)
	s.Equal(false, body["warn"])
	s.NotContains(body["message"], "redis")
}

func (s *HandlerTestSuite) TestGetHistoryLimit() {
	s.mockService.EXPECT().
		GetHistory(gomock.Any(), &raffle.GetHistoryInput{RaffleID: s.testRaffleID, Limit: 5}).
		Return(&raffle.GetHistoryOutput{Entries: []*models.HistoryEntry{}, Total: 12}, nil)

	w := s.do(http.MethodGet, "/history?limit=5", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(12), s.decode(w)["total"])

	w = s.do(http.MethodGet, "/history?limit=lots", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestExport() {
	s.mockService.EXPECT().
		Export(gomock.Any(), &raffle.ExportInput{RaffleID: s.testRaffleID}).
		Return(&raffle.ExportOutput{Data: []byte(`{"prizes":[]}`), FileName: "ruleta-loot-data.json"}, nil)

	w := s.do(http.MethodGet, "/export", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="ruleta-loot-data.json"`, w.Header().Get("Content-Disposition"))
	s.Equal(`{"prizes":[]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestImportRawBody() {
	doc := []byte(`{"participants":[]}`)
	s.mockService.EXPECT().
		Import(gomock.Any(), &raffle.ImportInput{RaffleID: s.testRaffleID, Data: doc}).
		Return(&raffle.ImportOutput{State: models.NewRaffleState()}, nil)

	w := s.do(http.MethodPost, "/import", gin.MIMEJSON, doc)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Imported successfully.", s.decode(w)["message"])
}

func (s *HandlerTestSuite) TestImportMultipart() {
	doc := []byte(`{"prizes":[]}`)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "ruleta-loot-data.json")
	s.Require().NoError(err)
	_, err = part.Write(doc)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	s.mockService.EXPECT().
		Import(gomock.Any(), &raffle.ImportInput{RaffleID: s.testRaffleID, Data: doc}).
		Return(&raffle.ImportOutput{State: models.NewRaffleState()}, nil)

	w := s.do(http.MethodPost, "/import", mw.FormDataContentType(), buf.Bytes())
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestImportMalformed() {
	s.mockService.EXPECT().
		Import(gomock.Any(), gomock.Any()).
		Return(nil, raffle.ErrMalformedImport)

	w := s.do(http.MethodPost, "/import", gin.MIMEJSON, []byte(`[]`))
	s.Equal(http.StatusBadRequest, w.Code)

	body := s.decode(w)
	s.Equal(true, body["warn"])
	s.Equal("Could not import the JSON.", body["message"])
}

func (s *HandlerTestSuite) TestClearHistoryAndReset() {
	s.mockService.EXPECT().
		ClearHistory(gomock.Any(), &raffle.ClearHistoryInput{RaffleID: s.testRaffleID}).
		Return(&raffle.ClearHistoryOutput{State: models.NewRaffleState()}, nil)
	s.mockService.EXPECT().
		Reset(gomock.Any(), &raffle.ResetInput{RaffleID: s.testRaffleID}).
		Return(&raffle.ResetOutput{}, nil)

	w := s.do(http.MethodDelete, "/history", "", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, "", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestStreamSendsStateThenFrames() {
	state := models.NewRaffleState()
	s.mockService.EXPECT().
		GetState(gomock.Any(), &raffle.GetStateInput{RaffleID: s.testRaffleID}).
		Return(&raffle.GetStateOutput{State: state}, nil)

	server := httptest.NewServer(s.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/raffles/" + s.testRaffleID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	defer conn.Close()

	var msg Message
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	s.Require().NoError(conn.ReadJSON(&msg))
	s.Equal(MessageTypeState, msg.Type)
	s.Equal(s.testRaffleID, msg.RaffleID)

	s.Eventually(func() bool {
		return s.hub.SubscriberCount(s.testRaffleID) == 1
	}, 5*time.Second, 10*time.Millisecond)

	s.hub.RenderFrame(s.testRaffleID, &raffle.Frame{Phase: raffle.FramePhaseSpin, Angle: 1.5, Progress: 0.5, Slices: 3})

	msg = Message{}
	s.Require().NoError(conn.ReadJSON(&msg))
	s.Equal(MessageTypeFrame, msg.Type)
	s.Require().NotNil(msg.Frame)
	s.Equal(1.5, msg.Frame.Angle)
	s.Equal(3, msg.Frame.Slices)
}
