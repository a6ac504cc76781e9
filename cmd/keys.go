package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibast-solutions/ms-go-session-keys/app/repository"
	"github.com/vibast-solutions/ms-go-session-keys/app/service"
	"github.com/vibast-solutions/ms-go-session-keys/config"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Provision and inspect stored session keys",
}

var keysAddCmd = &cobra.Command{
	Use:   "add <session_key>",
	Short: "Store a session key under a newly generated id",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		sessionKeyService, db, err := newSessionKeyServiceForCommands()
		if err != nil {
			return err
		}
		defer db.Close()

		key, err := sessionKeyService.Create(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, service.ErrInvalidSessionKey) {
				return fmt.Errorf("session key must not be blank")
			}
			return err
		}

		fmt.Printf("id: %s\n", key.ID)
		fmt.Printf("session_key: %s\n", key.SessionKey)
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored session key",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		sessionKeyService, db, err := newSessionKeyServiceForCommands()
		if err != nil {
			return err
		}
		defer db.Close()

		keys, err := sessionKeyService.List(context.Background())
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Printf("%s -> %s\n", key.ID, key.SessionKey)
		}
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysListCmd)
	rootCmd.AddCommand(keysCmd)
}

func newSessionKeyServiceForCommands() (service.SessionKeyService, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	sessionKeyRepo := repository.NewSessionKeyRepository(db, dialectFor(cfg))
	return service.NewSessionKeyService(sessionKeyRepo), db, nil
}
