package routes

import (
	"context"
	"log"
	"os"

	_ "condado_dog/docs" // swag-generated documentation
	"condado_dog/internal/adapter/http/handlers"
	repository2 "condado_dog/internal/adapter/persistence/repository"
	"condado_dog/internal/adapter/ratesource"
	"condado_dog/internal/domain/pricing"
	"condado_dog/internal/infrastructure/database"
	"condado_dog/internal/infrastructure/documents"
	"condado_dog/internal/usecase"
	"condado_dog/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	rateSource := buildRateSource()
	policy := buildPolicy()

	renderer, err := documents.NewChromeRenderer()
	if err != nil {
		log.Fatalf("Failed to build proposal renderer: %v", err)
	}

	quoteUseCase := usecase.NewQuoteUseCase(rateSource, quoteRepo, renderer, policy)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBoardingRoutes(v1, quoteHandler)
}

// buildRateSource selects the rate table provider: the business keeps
// its tables either in a Google spreadsheet or in a local workbook.
func buildRateSource() interfaces.IRateSource {
	switch getenvDefault("RATE_SOURCE", "xlsx") {
	case "sheets":
		src, err := ratesource.NewSheetsRateSource(
			context.Background(),
			getenvDefault("SHEETS_CREDENTIALS_FILE", "credentials.json"),
			os.Getenv("SHEETS_SPREADSHEET_ID"),
		)
		if err != nil {
			log.Fatalf("Failed to build sheets rate source: %v", err)
		}
		return src
	case "xlsx":
		return ratesource.NewXLSXRateSource(getenvDefault("RATES_XLSX_PATH", "tabela_precos.xlsx"))
	default:
		log.Fatalf("Unknown RATE_SOURCE %q (expected sheets or xlsx)", os.Getenv("RATE_SOURCE"))
		return nil
	}
}

func buildPolicy() pricing.Policy {
	tolerance, err := pricing.ParseTolerancePolicy(getenvDefault("TOLERANCE_POLICY", string(pricing.ToleranceGraduated)))
	if err != nil {
		log.Fatalf("Invalid TOLERANCE_POLICY: %v", err)
	}
	proration, err := pricing.ParseProrationPolicy(getenvDefault("PRORATION_POLICY", string(pricing.ProrationFixedFourWeeks)))
	if err != nil {
		log.Fatalf("Invalid PRORATION_POLICY: %v", err)
	}
	return pricing.Policy{Tolerance: tolerance, Proration: proration}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
