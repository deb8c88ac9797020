package main

import (
	"os"

	"github.com/PranzNi/RPG-NURSE/internal/api"
	"github.com/PranzNi/RPG-NURSE/internal/config"
	"github.com/PranzNi/RPG-NURSE/internal/constants"
	"github.com/PranzNi/RPG-NURSE/internal/contentgen"
	"github.com/PranzNi/RPG-NURSE/internal/logging"
	"github.com/PranzNi/RPG-NURSE/internal/service"
	"github.com/PranzNi/RPG-NURSE/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Both keys are optional for local play: without SESSION_SECRET an
	// in-memory dev secret is generated, without GEMINI_API_KEY every
	// encounter runs on fallback content.
	warnMissingEnvVars([]string{constants.EnvSessionSecret, constants.EnvGeminiAPIKey})

	// Optional configuration file (server address, prompt templates,
	// catalog overrides). Path comes from COMBAT_CONFIG; absent means
	// built-in defaults.
	cfg, err := config.Load(os.Getenv(constants.EnvConfigPath))
	if err != nil {
		logging.Fatal("Invalid game configuration", err, logging.Fields{"config_path": os.Getenv(constants.EnvConfigPath)})
	}

	dbPath := os.Getenv(constants.EnvDatabasePath)
	if dbPath == "" {
		dbPath = constants.DefaultDatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	provider := contentgen.NewClient(os.Getenv(constants.EnvGeminiAPIKey))
	provider.SetPromptTemplates(cfg.MonsterPromptTemplate, cfg.QuestionPromptTemplate)

	sessions := service.NewManager()
	saver := service.NewSaver(repo, service.DefaultSaveDelay)
	handler := api.NewGameHandler(repo, sessions, saver, provider, cfg.Catalog)
	authHandler := api.NewAuthHandler(repo, sessions, saver)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.POST(constants.RouteAuthRegister, authHandler.Register)
		apiRoutes.POST(constants.RouteAuthLogin, authHandler.Login)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.POST(constants.RouteAuthLogout, authHandler.Logout)

		protected.GET(constants.RoutePlayer, handler.GetPlayer)
		protected.POST(constants.RoutePlayerSave, handler.SavePlayer)
		protected.POST(constants.RoutePlayerAllocate, handler.AllocateStat)
		protected.POST(constants.RoutePlayerItemUse, handler.UseItem)

		protected.GET(constants.RouteDungeons, handler.GetDungeons)
		protected.GET(constants.RouteItems, handler.GetItems)
		protected.GET(constants.RouteAbilities, handler.GetAbilities)
		protected.POST(constants.RouteShopBuy, handler.BuyItem)

		protected.POST(constants.RouteEncounters, handler.StartEncounter)
		protected.GET(constants.RouteEncounters, handler.GetEncounter)
		protected.POST(constants.RouteEncounterAnswer, handler.SubmitAnswer)
		protected.POST(constants.RouteEncounterNext, handler.NextRound)
		protected.POST(constants.RouteEncounterAbility, handler.UseAbility)
		protected.POST(constants.RouteEncounterHeal, handler.CastHeal)
		protected.POST(constants.RouteEncounterItem, handler.UseItemInCombat)
		protected.POST(constants.RouteEncounterContinue, handler.ContinueEncounter)
		protected.POST(constants.RouteEncounterLeave, handler.LeaveEncounter)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func warnMissingEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Warn("Environment variable not set, running with a development fallback", nil, logging.Fields{"var": v})
		}
	}
}
