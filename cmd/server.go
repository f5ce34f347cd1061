package cmd

import (
	"context"
	"daybook/internal/config"
	"daybook/internal/core"
	"daybook/internal/db"
	"daybook/internal/http/handler"
	"daybook/internal/http/handler/middleware"
	"daybook/internal/http/server"
	"daybook/internal/repository"
	"daybook/internal/session"
	"daybook/internal/upload"
	"daybook/pkg/jwt"
	"daybook/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

const templateDir = "web/templates"

func Start() error {
	logger := log.NewZapLogger("daybook", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewDiaryRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	if config.AdminUsername != "" && config.AdminPassword != "" {
		err := repo.ProvisionUser(context.Background(), config.AdminUsername, config.AdminPassword)
		if err != nil {
			logger.Errorw("failed to provision admin user", "error", err)
			return err
		}
	}

	// session manager over signed tokens
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))
	sessions := session.NewManager(jwtService)

	// image uploads
	images, err := upload.NewStore(config.UploadDir)
	if err != nil {
		logger.Errorw("failed to create upload store", "error", err)
		return err
	}

	// diary
	diary := core.NewDiary(logger, repo)

	renderer, err := handler.NewRenderer(templateDir)
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	diaryHlr := handler.NewDiaryHandler(
		logger,
		diary,
		sessions,
		images,
		renderer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Index, diaryHlr.HandleIndex)
	mux.HandleFunc(handler.LoginPage, diaryHlr.HandleLoginPage)
	mux.HandleFunc(handler.Login, diaryHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, diaryHlr.HandleLogout)
	mux.HandleFunc(handler.NewEntry, diaryHlr.HandleNewEntry)
	mux.HandleFunc(handler.CreateEntry, diaryHlr.HandleCreate)
	mux.HandleFunc(handler.EntryDetail, diaryHlr.HandleEntryDetail)
	mux.HandleFunc(handler.EditEntry, diaryHlr.HandleEditEntry)
	mux.HandleFunc(handler.UpdateEntry, diaryHlr.HandleUpdate)
	mux.HandleFunc(handler.DeleteEntry, diaryHlr.HandleDelete)
	mux.HandleFunc(handler.UploadedFile, diaryHlr.HandleUploadedFile)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
