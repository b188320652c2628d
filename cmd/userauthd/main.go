package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/averde/userauth"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := userauth.LoadConfig()
	if err != nil {
		return err
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		return err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := userauth.CreateUsersSchema(context.Background(), db); err != nil {
		return err
	}

	tokens := userauth.NewTokenService(cfg, nil)
	auther := userauth.NewAuthenticator(userauth.NewUsersRepository(db), tokens)

	app := fiber.New(fiber.Config{
		AppName:               "userauthd",
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	userauth.RegisterAuthRoutes(app,
		userauth.WithAuthenticator(auther),
		userauth.WithDebug(cfg.Debug),
	)

	app.Get("/me", userauth.RequireAccessToken(tokens), func(c *fiber.Ctx) error {
		claims, ok := userauth.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{
			"id":   claims.UserID(),
			"role": claims.Role(),
		})
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
