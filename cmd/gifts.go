package cmd

import (
	"encoding/json"
	"fmt"

	"product-gifts/core/config"
	"product-gifts/core/logger"
	"product-gifts/feature/gifts"

	"github.com/spf13/cobra"
)

var (
	giftsViewport string
	giftsWidth    int
)

// giftsCmd resolves the gifts of one product item and prints the state
var giftsCmd = &cobra.Command{
	Use:   "gifts [productId] [itemId]",
	Short: "Resolve the highlighted gifts of a product item",
	Long: `Runs both catalog queries for the item and prints the gifts state as JSON.
Nothing is printed when the item has no highlighted gifts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		client, closeClient, err := newCatalogClient(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}
		defer closeClient()

		svc, err := gifts.NewService(client, cfg.Gifts, logg, nil)
		if err != nil {
			return err
		}

		req := gifts.Request{ProductID: args[0], ItemID: args[1], Viewport: giftsViewport, Width: giftsWidth}
		if err := req.Validate(); err != nil {
			return err
		}
		// No User-Agent on the command line, so an unset viewport resolves as desktop
		state, ok := svc.Resolve(cmd.Context(), req.Selection(svc.Thresholds(), ""))
		if !ok {
			return nil
		}

		out, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	giftsCmd.Flags().StringVar(&giftsViewport, "viewport", "", "viewport breakpoint (phone, tablet, desktop or small, medium, large)")
	giftsCmd.Flags().IntVar(&giftsWidth, "width", 0, "viewport width in CSS pixels")
	RootCmd.AddCommand(giftsCmd)
}
