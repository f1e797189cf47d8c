package routes

import (
	"oficina_ibs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
		quotes.POST("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.POST("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.GET("/:quote_id/pdf", quoteHandler.DownloadQuotePDF)
	}
}
