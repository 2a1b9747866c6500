package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"utilibill/cmd/client/cmd/auth"
	"utilibill/cmd/client/cmd/bill"
	"utilibill/cmd/client/cmd/branch"
	"utilibill/cmd/client/cmd/customer"
	"utilibill/cmd/client/cmd/demandtype"
	"utilibill/cmd/client/cmd/employee"
	"utilibill/cmd/client/cmd/payment"
	"utilibill/cmd/client/cmd/types"
	"utilibill/internal/app/client"
	"utilibill/internal/app/client/config"
	"utilibill/internal/utils/logger"
)

var (
	cfgFile   string
	serverURL string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "utilibill",
	Short: "Utilibill is the admin console for utility billing",
	Long: `Utilibill manages branches, demand types, customers, employees,
bills and payments against a Utilibill server.

List commands hand rows off to form commands through a local edit
session, so a started edit survives between invocations for 24 hours.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".utilibill"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return config.MustLoad(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.utilibill/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Utilibill server address")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(branch.BranchCmd)
	rootCmd.AddCommand(demandtype.DemandTypeCmd)
	rootCmd.AddCommand(customer.CustomerCmd)
	rootCmd.AddCommand(employee.EmployeeCmd)
	rootCmd.AddCommand(bill.BillCmd)
	rootCmd.AddCommand(payment.PaymentCmd)
	rootCmd.AddCommand(pingCmd)
}
