package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fortune-cloud/config"
	"fortune-cloud/fortune"
	"fortune-cloud/logging"
)

const (
	VERSION     = "1.0.0"
	serviceName = "fortune-cloud"
)

var log = logging.GetLogger()

var (
	configFile string
	portFlag   string
)

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Fortune cookie HTTP service",
	Long: `fortune-cloud serves a greeting endpoint and a fortune cookie generator
under /rest. Fortunes come from an OpenAI-compatible chat completion API when
OPENAI_API_KEY is set, and from a fixed local list otherwise.`,
	Version:       VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// loadConfig reads .env, the optional config file and flags, then applies the
// logging settings.
func loadConfig() (*config.Config, error) {
	dotEnv := config.LoadDotEnv()

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logging.InitLogger(lvl, cfg.LogFormat)

	if !dotEnv {
		log.Debug(".env file not found, using environment variables")
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := fortune.NewService(cfg.Fortune())
	if svc.Source() == fortune.SourceLocal {
		log.Warn("OPENAI_API_KEY not set, serving local fortunes")
	} else {
		log.WithField("model", cfg.OpenAIModel).Info("serving fortunes from chat completion API")
	}

	srv := &http.Server{
		Handler:      newRouter(svc, cfg.ExposeErrorDetails),
		Addr:         cfg.Addr(),
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  30 * time.Second,
	}

	log.Infof("Fortune Cloud Server v%s starting on %s", VERSION, srv.Addr)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server forced to shutdown")
	}

	log.Info("Server exited")
	return nil
}
