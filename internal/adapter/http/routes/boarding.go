package routes

import (
	"condado_dog/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addBoardingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.GET("/:id/proposal", quoteHandler.DownloadProposal)
	}
}
