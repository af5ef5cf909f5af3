package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"riskserver/config"
	"riskserver/conquest"
	"riskserver/game"
)

// Server wires the HTTP routes to the hub. The probability table is
// shared across games started on this server.
type Server struct {
	hub   *Hub
	table *conquest.Table
}

func New(g *game.Game, table *conquest.Table) *Server {
	return &Server{hub: NewHub(g), table: table}
}

// Router builds the gin engine with CORS open to all origins.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	router.GET("/", s.apiDocumentation)
	router.GET("/game-state", s.gameState)
	router.POST("/reinforce", s.reinforce)
	router.POST("/bulk_reinforce", s.bulkReinforce)
	router.POST("/attack", s.attack)
	router.POST("/fortify", s.fortify)
	router.POST("/move_armies", s.moveArmies)
	router.POST("/trade_cards", s.tradeCards)
	router.POST("/advance_phase", s.advancePhase)
	router.POST("/new-game", s.newGame)
	return router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("risk server listening")
	return s.Router().Run(addr)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

type reinforceRequest struct {
	PlayerID  int    `json:"player_id"`
	Territory string `json:"territory"`
	NumArmies int    `json:"num_armies"`
}

type bulkReinforceRequest struct {
	PlayerID       int             `json:"player_id"`
	Reinforcements []reinforceItem `json:"reinforcements"`
}

type reinforceItem struct {
	Territory string `json:"territory"`
	NumArmies int    `json:"num_armies"`
}

type attackRequest struct {
	PlayerID      int    `json:"player_id"`
	FromTerritory string `json:"from_territory"`
	ToTerritory   string `json:"to_territory"`
	NumDice       int    `json:"num_dice"`
	Repeat        bool   `json:"repeat"`
}

type fortifyRequest struct {
	PlayerID      int    `json:"player_id"`
	FromTerritory string `json:"from_territory"`
	ToTerritory   string `json:"to_territory"`
	NumArmies     int    `json:"num_armies"`
}

type moveArmiesRequest struct {
	PlayerID      int    `json:"player_id"`
	FromTerritory string `json:"from_territory"`
	ToTerritory   string `json:"to_territory"`
	NumArmies     int    `json:"num_armies"`
}

type tradeCardsRequest struct {
	PlayerID    int   `json:"player_id"`
	CardIndices []int `json:"card_indices"`
}

type newGameRequest struct {
	ConfigFile string `json:"config_file,omitempty"`
	NumPlayers int    `json:"num_players,omitempty"`
}

func (s *Server) reinforce(c *gin.Context) {
	var req reinforceRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		return h.result(h.game.Reinforce(req.PlayerID, req.Territory, req.NumArmies))
	}))
}

// bulkReinforce applies a sequence of reinforcements; the first failure
// stops the sequence and is reported, with the partial state visible in
// the snapshot.
func (s *Server) bulkReinforce(c *gin.Context) {
	var req bulkReinforceRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		for _, item := range req.Reinforcements {
			if err := h.game.Reinforce(req.PlayerID, item.Territory, item.NumArmies); err != nil {
				return h.fail(err)
			}
		}
		return h.ok()
	}))
}

func (s *Server) attack(c *gin.Context) {
	var req attackRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		return h.result(h.game.Attack(req.PlayerID, req.FromTerritory, req.ToTerritory, req.NumDice, req.Repeat))
	}))
}

func (s *Server) fortify(c *gin.Context) {
	var req fortifyRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		return h.result(h.game.Fortify(req.PlayerID, req.FromTerritory, req.ToTerritory, req.NumArmies))
	}))
}

func (s *Server) moveArmies(c *gin.Context) {
	var req moveArmiesRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		return h.result(h.game.MoveArmiesAfterAttack(req.PlayerID, req.FromTerritory, req.ToTerritory, req.NumArmies))
	}))
}

func (s *Server) tradeCards(c *gin.Context) {
	var req tradeCardsRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		_, err := h.game.TradeCards(req.PlayerID, req.CardIndices)
		return h.result(err)
	}))
}

func (s *Server) advancePhase(c *gin.Context) {
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		h.game.AdvancePhase()
		return h.ok()
	}))
}

// newGame replaces the live game, either from a config file or with a
// randomized setup on the default board.
func (s *Server) newGame(c *gin.Context) {
	var req newGameRequest
	if !s.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		if req.ConfigFile != "" {
			cfg, err := config.Load(req.ConfigFile)
			if err != nil {
				return h.fail(err)
			}
			board, players, err := cfg.BoardAndPlayers()
			if err != nil {
				return h.fail(err)
			}
			h.game = game.New(board, players, s.table, nil)
			return h.ok()
		}

		numPlayers := req.NumPlayers
		if numPlayers == 0 {
			numPlayers = 6
		}
		board, err := config.Default().Board()
		if err != nil {
			return h.fail(err)
		}
		h.game = game.NewRandom(board, numPlayers, s.table, nil)
		return h.ok()
	}))
}

func (s *Server) gameState(c *gin.Context) {
	c.JSON(http.StatusOK, s.hub.Do(func(h *Hub) Response {
		return h.ok()
	}))
}

type apiEndpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

func (s *Server) apiDocumentation(c *gin.Context) {
	c.JSON(http.StatusOK, []apiEndpoint{
		{"/", "GET", "Shows this API documentation"},
		{"/game-state", "GET", "Get the current state of the game"},
		{"/reinforce", "POST", "Reinforce a territory with armies"},
		{"/bulk_reinforce", "POST", "Reinforce multiple territories at once"},
		{"/attack", "POST", "Attack from one territory to another"},
		{"/fortify", "POST", "Move armies between connected territories"},
		{"/move_armies", "POST", "Move armies after a successful attack"},
		{"/trade_cards", "POST", "Trade in cards for additional armies"},
		{"/advance_phase", "POST", "Advance to the next game phase"},
		{"/new-game", "POST", "Start a new game with optional configuration"},
	})
}

// bind parses the JSON body, replying with the current state and a
// descriptive error when the body is malformed.
func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, s.hub.Do(func(h *Hub) Response {
			return h.fail(err)
		}))
		return false
	}
	return true
}
