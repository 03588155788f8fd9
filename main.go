package main

import (
	"log"
	"os"
	"strings"
	"time"

	"ruangobat-admin/config"
	"ruangobat-admin/database"
	accessesapi "ruangobat-admin/internal/api/accesses"
	adminapi "ruangobat-admin/internal/api/admin"
	eventsapi "ruangobat-admin/internal/api/events"
	plansapi "ruangobat-admin/internal/api/plans"
	usersapi "ruangobat-admin/internal/api/users"
	routes "ruangobat-admin/internal/app/http"
	"ruangobat-admin/internal/app/lifecycle"
	"ruangobat-admin/internal/app/readmodel"
	"ruangobat-admin/internal/domain/audit"
	"ruangobat-admin/internal/domain/idempotency"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	host, _ := os.Hostname()
	appLog := logger.NewRollbarLogger(log.Default(), cfg.RollbarToken, cfg.AppEnv, host)
	defer appLog.Close()

	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		appLog.Warn("unknown DEFAULT_TIMEZONE; falling back to UTC", err)
		loc = time.UTC
	}

	db := database.InitDB(cfg.DBURL)

	client := ruangobat.NewClient(cfg.RuangobatAPIURL, time.Duration(cfg.BackendTimeoutSeconds)*time.Second)
	flows := idempotency.NewStore(db)
	recorder := audit.NewRecorder(db)
	accessList := readmodel.NewAccessList(client, appLog, time.Duration(cfg.AccessCacheTTLSeconds)*time.Second)
	service := lifecycle.NewService(client, flows, accessList, recorder, appLog, cfg.DefaultTimezone)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(cfg.CORSOrigin),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		JWTSecret: cfg.JWTSecret,
		Accesses:  accessesapi.NewHandler(accessList, client, flows, service, appLog),
		Events:    eventsapi.NewHandler(client, appLog, loc),
		Plans:     plansapi.NewHandler(client, appLog),
		Users:     usersapi.NewHandler(client, appLog),
		Admin:     adminapi.NewHandler(db, recorder, appLog),
	})

	appLog.Info("ruangobat-admin listening", map[string]interface{}{"port": cfg.Port, "env": cfg.AppEnv})
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Error("server stopped", err)
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}
