// Command cybershield is the terminal front end for the CyberShield AI
// moderation service: account registration and login, text analysis,
// and the rolling history of recent verdicts. All classification and
// credential logic lives in the backend; this binary is forms, a route
// guard, and local session state.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/auth"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/session"
	"github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/store"
)

var (
	serviceURL  string
	debug       bool
	stateDir    string
	storeDriver string
	redisAddr   string
	httpTimeout time.Duration
)

// envDefaults groups the environment-configured knobs (prefix
// CYBERSHIELD_). Flags override these.
type envDefaults struct {
	APIURL      string        `envconfig:"API_URL"      default:"http://127.0.0.1:8000"`
	StateDir    string        `envconfig:"STATE_DIR"`
	Store       string        `envconfig:"STORE"        default:"file"`
	RedisAddr   string        `envconfig:"REDIS_ADDR"   default:"127.0.0.1:6379"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var cfg envDefaults
	if err := envconfig.Process("CYBERSHIELD", &cfg); err != nil {
		log.Warn().Err(err).Msg("bad CYBERSHIELD_* environment, using defaults")
		cfg = envDefaults{APIURL: "http://127.0.0.1:8000", Store: "file", RedisAddr: "127.0.0.1:6379", HTTPTimeout: 30 * time.Second}
	}

	rootCmd := &cobra.Command{
		Use:          "cybershield",
		Short:        "CyberShield AI content moderation client",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("CYBERSHIELD_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.APIURL, "Base URL of the CyberShield backend")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", cfg.StateDir, "Directory for session/history state (file store)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", cfg.Store, "State store driver: file, memory or redis")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", cfg.RedisAddr, "Redis address (redis store)")
	httpTimeout = cfg.HTTPTimeout

	// Sub-commands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newSendOTPCmd())
	rootCmd.AddCommand(newVerifyOTPCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

// newAPIClient builds the SDK client from the persistent flags.
func newAPIClient() (*client.Client, error) {
	return client.New(serviceURL, client.WithHTTPTimeout(httpTimeout))
}

// openStore builds the snapshot store selected by --store.
func openStore() (store.Store, error) {
	switch store.Driver(storeDriver) {
	case store.DriverMemory:
		return store.New(store.DriverMemory)

	case store.DriverFile:
		dir := stateDir
		if dir == "" {
			var err error
			dir, err = store.DefaultDir()
			if err != nil {
				return nil, err
			}
		}
		return store.New(store.DriverFile, store.WithDir(dir))

	case store.DriverRedis:
		rc := redis.NewClient(&redis.Options{Addr: redisAddr})
		return store.New(store.DriverRedis, store.WithRedisClient(rc))

	default:
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidDriver, storeDriver)
	}
}

// newController wires client + store + hydrated auth controller. The
// caller closes the returned store.
func newController(ctx context.Context) (*auth.Controller, store.Store, error) {
	api, err := newAPIClient()
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return auth.NewController(ctx, api, session.NewAdapter(st)), st, nil
}

// requireSession is the route guard: protected commands refuse to run
// without a live session and point the user back to login.
func requireSession(ctrl *auth.Controller) (*session.Session, error) {
	s := ctrl.Current()
	if s == nil {
		return nil, errors.New("not logged in: run 'cybershield login' first")
	}
	return s, nil
}

// renderErr collapses a classified SDK error to its user-facing message.
// The full chain goes to the debug log.
func renderErr(err error) error {
	if err == nil {
		return nil
	}
	log.Debug().Err(err).Msg("operation failed")
	return errors.New(client.ErrorMessage(err))
}
