package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inventory/internal/config"
	"inventory/internal/handlers"
	"inventory/internal/models"
	"inventory/internal/services"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var configFile string

	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Track products, prices and stock from an interactive menu",
		Long:          "inventory keeps an in-memory list of products and lets you add, find, update, list and value them through a numbered menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
				v.Set(config.KeySeed, false)
			}
			if noPause, _ := cmd.Flags().GetBool("no-pause"); noPause {
				v.Set(config.KeyPause, false)
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(cfg.LogLevel)

			inv := services.NewInventory()
			if cfg.Seed {
				seedProducts(inv)
				fmt.Fprintln(cmd.OutOrStdout(), "Sample products have been added to the inventory.")
			}

			menu := handlers.NewMenuHandler(inv, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Pause)
			return menu.Run()
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, toml or json)")
	cmd.Flags().Bool("no-seed", false, "start with an empty inventory")
	cmd.Flags().Bool("no-pause", false, "do not wait for Enter after each action")
	cmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level"))

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// seedProducts populates the inventory with some initial data.
func seedProducts(inv *services.Inventory) {
	samples := []struct {
		name     string
		price    float64
		quantity int
	}{
		{"Laptop", 1200.50, 5},
		{"Mouse", 25.99, 10},
		{"Keyboard", 45.75, 8},
	}

	for _, s := range samples {
		p, err := models.NewProduct(s.name, s.price, s.quantity)
		if err == nil {
			_, err = inv.Add(p)
		}
		if err != nil {
			logrus.WithError(err).Errorf("Error seeding product %s", s.name)
			continue
		}
		logrus.Debugf("Seeded product: %s", s.name)
	}
}
