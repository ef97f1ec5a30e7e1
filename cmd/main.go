package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/thesrcielos/PrinceLevels/api/middleware"
	v1 "github.com/thesrcielos/PrinceLevels/api/v1"
	"github.com/thesrcielos/PrinceLevels/internal/catalog"
	"github.com/thesrcielos/PrinceLevels/internal/level"
	"github.com/thesrcielos/PrinceLevels/internal/user"
	"github.com/thesrcielos/PrinceLevels/pkg/db"
	"github.com/thesrcielos/PrinceLevels/websocket"
)

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &catalog.Revision{})

	loader := level.NewFileLoader(
		getEnv("LEVELS_DIR", "assets/levels/bin"),
		getEnv("LEVEL_DOCS_DIR", "assets/levels/json"),
	)
	notifier := websocket.NewNotifier(db.Rdb)
	if err := notifier.SubscribeEvents(); err != nil {
		log.Fatalf("error subscribing to level events: %v", err)
	}

	v1.CatalogStore = catalog.NewStore(db.DB)
	v1.LevelService = level.NewLevelService(
		loader,
		level.NewRedisDocumentCache(db.Rdb),
		v1.CatalogStore,
		notifier,
	)
	v1.UserService = user.NewUserService(user.NewGormUserRepository())

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))

	levels := api.Group("/levels")
	v1.RegisterLevelRoutes(levels)

	edit := api.Group("/levels")
	edit.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterLevelEditRoutes(edit)

	profile := api.Group("/profile")
	profile.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterProfileRoutes(profile)

	e.GET("/events", websocket.WebSocketHandler)

	e.Logger.Fatal(e.Start(":" + getEnv("PORT", "8080")))
}
