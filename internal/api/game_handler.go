package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/guess-game/internal/errors"
	"github.com/wfunc/guess-game/internal/service"
)

// GuessRequest 猜测请求体
type GuessRequest struct {
	Guess *int `json:"guess" binding:"required"`
}

// GameHandler 猜数字游戏处理器
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// StartGame 开始新游戏
// @Summary 开始新游戏
// @Description 创建一局新的猜数字游戏并返回游戏标识
// @Tags Game
// @Produce json
// @Success 201 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /games [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	result, err := h.gameService.StartGame(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/games/%s", result.GameID))
	Success(c, http.StatusCreated, result)
}

// MakeGuess 提交一次猜测
// @Summary 提交猜测
// @Description 对指定游戏提交一次1-100之间的整数猜测
// @Tags Game
// @Accept json
// @Produce json
// @Param gameId path string true "游戏标识"
// @Param request body GuessRequest true "猜测数字"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /games/{gameId}/guesses [post]
func (h *GameHandler) MakeGuess(c *gin.Context) {
	gameID := c.Param("gameId")

	// 请求体不合法（包括畸形JSON）一律按校验失败处理
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.Validation("Guess must be an integer between 1 and 100.").
			WithDetails(err.Error()))
		return
	}

	result, err := h.gameService.MakeGuess(c.Request.Context(), gameID, *req.Guess)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, result)
}
