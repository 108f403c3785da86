package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formsense/formsense/internal/cli"
	"github.com/formsense/formsense/internal/config"
	"github.com/formsense/formsense/internal/storage"
)

var settingsKeys = []string{
	storage.KeyAPIKey,
	storage.KeyProvider,
	storage.KeyModel,
	storage.KeyPerMinuteLimit,
	storage.KeyDailyLimit,
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage stored settings",
	}

	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsShowCmd())

	return cmd
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a setting",
		Long:  "Persist a setting. Valid keys: " + strings.Join(settingsKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !validSettingsKey(key) {
				return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(settingsKeys, ", "))
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Set(cmd.Context(), map[string]string{key: value}); err != nil {
				return fmt.Errorf("failed to save setting: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s saved", key)))
			return nil
		},
	}
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			values, err := store.Get(cmd.Context(), settingsKeys)
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}

			if len(values) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no settings stored"))
				return nil
			}

			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Println(cli.TitleStyle.Render("Settings"))
			for _, k := range keys {
				v := values[k]
				if k == storage.KeyAPIKey {
					v = maskSecret(v)
				}
				fmt.Printf("  %-18s %s\n", cli.BoldStyle.Render(k), v)
			}
			return nil
		},
	}
}

func openStore() (storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return store, nil
}

func validSettingsKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

func maskSecret(v string) string {
	if len(v) <= 8 {
		return strings.Repeat("*", len(v))
	}
	return v[:4] + strings.Repeat("*", 4) + v[len(v)-4:]
}
