package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"

	"riskserver/game"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter serves a two-player game on a three-territory chain.
// Player 0 holds Left (3 armies) and Middle (2), player 1 holds
// Right (4); each side opens with the base pool of three.
func newTestRouter() *gin.Engine {
	board := game.NewBoard()
	board.AddContinent(&game.Continent{Name: "Main", BonusArmies: 2, Territories: []string{"Left", "Middle", "Right"}})
	board.AddTerritory(&game.Territory{Name: "Left", Continent: "Main", Adjacent: []string{"Middle"}})
	board.AddTerritory(&game.Territory{Name: "Middle", Continent: "Main", Adjacent: []string{"Left", "Right"}})
	board.AddTerritory(&game.Territory{Name: "Right", Continent: "Main", Adjacent: []string{"Middle"}})

	p0 := game.NewPlayer(0, "Player 1")
	p0.AddTerritory("Left")
	p0.SetArmies("Left", 3)
	p0.AddTerritory("Middle")
	p0.SetArmies("Middle", 2)

	p1 := game.NewPlayer(1, "Player 2")
	p1.AddTerritory("Right")
	p1.SetArmies("Right", 4)

	g := game.New(board, []*game.Player{p0, p1}, nil, rand.New(rand.NewSource(1)))
	return New(g, nil).Router()
}

func post(t *testing.T, router *gin.Engine, path string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestAPIDocumentation(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var endpoints []apiEndpoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &endpoints))
	require.Len(t, endpoints, 10)
}

func TestGameState(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game-state", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.GameState)
	require.Equal(t, game.PhaseReinforce, resp.GameState.TurnPhase)
	require.Equal(t, 3, resp.GameState.ReinforcementArmies)
	require.Len(t, resp.GameState.Players, 2)
}

func TestReinforceEndpoint(t *testing.T) {
	t.Run("valid placement", func(t *testing.T) {
		rec, resp := post(t, newTestRouter(), "/reinforce", reinforceRequest{
			PlayerID: 0, Territory: "Left", NumArmies: 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, resp.Error)
		require.Equal(t, 1, resp.GameState.ReinforcementArmies)
		require.Equal(t, 5, resp.GameState.Players[0].Armies["Left"])
	})

	t.Run("rejected action still returns the state", func(t *testing.T) {
		rec, resp := post(t, newTestRouter(), "/reinforce", reinforceRequest{
			PlayerID: 0, Territory: "Right", NumArmies: 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, "rule violations are payload errors, not transport errors")
		require.NotEmpty(t, resp.Error)
		require.NotNil(t, resp.GameState)
		require.Equal(t, 3, resp.GameState.ReinforcementArmies)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		router := newTestRouter()
		req := httptest.NewRequest(http.MethodPost, "/reinforce", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Error)
		require.NotNil(t, resp.GameState, "even a bind failure reports the current state")
	})
}

func TestBulkReinforceEndpoint(t *testing.T) {
	t.Run("spending the pool advances the phase", func(t *testing.T) {
		_, resp := post(t, newTestRouter(), "/bulk_reinforce", bulkReinforceRequest{
			PlayerID: 0,
			Reinforcements: []reinforceItem{
				{Territory: "Left", NumArmies: 2},
				{Territory: "Middle", NumArmies: 1},
			},
		})
		require.Empty(t, resp.Error)
		require.Equal(t, game.PhaseAttack, resp.GameState.TurnPhase)
	})

	t.Run("first failure stops the sequence", func(t *testing.T) {
		_, resp := post(t, newTestRouter(), "/bulk_reinforce", bulkReinforceRequest{
			PlayerID: 0,
			Reinforcements: []reinforceItem{
				{Territory: "Left", NumArmies: 2},
				{Territory: "Right", NumArmies: 1},
			},
		})
		require.NotEmpty(t, resp.Error)
		require.Equal(t, 1, resp.GameState.ReinforcementArmies, "the partial placement remains visible")
	})
}

func TestAttackEndpoint(t *testing.T) {
	_, resp := post(t, newTestRouter(), "/attack", attackRequest{
		PlayerID: 0, FromTerritory: "Middle", ToTerritory: "Right", NumDice: 3,
	})
	require.NotEmpty(t, resp.Error, "attacking during reinforcement must be rejected")
	require.Equal(t, game.PhaseReinforce, resp.GameState.TurnPhase)
}

func TestAdvancePhaseEndpoint(t *testing.T) {
	router := newTestRouter()
	_, resp := post(t, router, "/bulk_reinforce", bulkReinforceRequest{
		PlayerID:       0,
		Reinforcements: []reinforceItem{{Territory: "Left", NumArmies: 3}},
	})
	require.Equal(t, game.PhaseAttack, resp.GameState.TurnPhase)

	_, resp = post(t, router, "/advance_phase", struct{}{})
	require.Empty(t, resp.Error)
	require.Equal(t, game.PhaseFortify, resp.GameState.TurnPhase)
}

func TestTradeCardsEndpoint(t *testing.T) {
	_, resp := post(t, newTestRouter(), "/trade_cards", tradeCardsRequest{
		PlayerID: 0, CardIndices: []int{0, 1, 2},
	})
	require.NotEmpty(t, resp.Error, "trading from an empty hand must be rejected")
}

func TestNewGameEndpoint(t *testing.T) {
	t.Run("randomized game on the default board", func(t *testing.T) {
		router := newTestRouter()
		_, resp := post(t, router, "/new-game", newGameRequest{NumPlayers: 3})
		require.Empty(t, resp.Error)
		require.Len(t, resp.GameState.Players, 3)
		require.Equal(t, game.PhaseReinforce, resp.GameState.TurnPhase)
		require.Equal(t, 0, resp.GameState.Round)
		require.Len(t, resp.GameState.Board.Territories, 42)
	})

	t.Run("missing config file is reported", func(t *testing.T) {
		_, resp := post(t, newTestRouter(), "/new-game", newGameRequest{ConfigFile: "does-not-exist.json"})
		require.NotEmpty(t, resp.Error)
	})
}
