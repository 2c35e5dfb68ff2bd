package routes

import (
	"log"
	_ "parking_xpto/docs" // This will be auto-generated
	"parking_xpto/internal/adapter/http/handlers"
	repository2 "parking_xpto/internal/adapter/persistence/repository"
	"parking_xpto/internal/infrastructure/database"
	"parking_xpto/internal/infrastructure/payments"
	"parking_xpto/internal/usecase"
	"parking_xpto/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	lotRepo := repository2.NewLotDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	penaltyRepo := repository2.NewPenaltyDynamoRepository(ddb)

	calculator := usecase.NewTariffCalculator()
	policy := usecase.PolicyFromEnv()

	reservationManager := usecase.NewReservationManager(ticketRepo, lotRepo, userRepo, vehicleRepo, calculator, policy)
	penaltyAssessor := usecase.NewPenaltyAssessor(ticketRepo, lotRepo, penaltyRepo, calculator)
	paymentProcessor := usecase.NewPaymentProcessor(paymentRepo, ticketRepo, penaltyRepo, lotRepo, selectPaymentGateway(), policy)

	reservationHandler := handlers.NewReservationHandler(reservationManager)
	paymentHandler := handlers.NewPaymentHandler(paymentProcessor)
	penaltyHandler := handlers.NewPenaltyHandler(penaltyAssessor)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addParkingRoutes(v1, reservationHandler, paymentHandler, penaltyHandler)
}

// selectPaymentGateway picks the charge backend. The simulated gateway is
// the default; Mercado Pago is opt-in via PAYMENT_GATEWAY=mercadopago.
func selectPaymentGateway() interfaces.IPaymentGateway {
	if os.Getenv("PAYMENT_GATEWAY") == "mercadopago" {
		mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			log.Printf("Mercado Pago gateway not configured, falling back to simulated: %v", err)
		} else {
			return mpGateway
		}
	}
	return payments.NewSimulatedGateway()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
