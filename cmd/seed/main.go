// Command seed loads the demo fixture set into a Postgres store. The
// memory store seeds itself at startup; this is the durable equivalent.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	swapgorm "github.com/okorolev/skillswap/internal/app/swap/repo/gorm"
	usergorm "github.com/okorolev/skillswap/internal/app/user/repo/gorm"
	"github.com/okorolev/skillswap/internal/fixtures"
	"github.com/okorolev/skillswap/internal/infrastructure/system"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		panic("DATABASE_DSN environment variable is required")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	timeGen := &system.TimeGenerator{}
	if err := fixtures.Load(ctx, usergorm.NewRepository(db), swapgorm.NewRepository(db), timeGen.Now()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	log.Info().Msg("demo fixtures loaded")
}
